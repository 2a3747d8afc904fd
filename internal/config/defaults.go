package config

import "time"

const (
	// DefaultHeroInterval is the autoplay period of the home page hero carousel.
	DefaultHeroInterval = 6000 * time.Millisecond
	// DefaultTestimonialInterval is the autoplay period of the testimonials carousel.
	DefaultTestimonialInterval = 5000 * time.Millisecond
	// DefaultTransitionLock matches the slide animation length. Navigation is
	// ignored while it is held.
	DefaultTransitionLock = 700 * time.Millisecond
	// DefaultMobileBreakpoint is the viewport width below which the site
	// behaves as mobile.
	DefaultMobileBreakpoint = 1024
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:     "Studio Glow",
		DataDir:      "data",
		CatalogFile:  "catalog.yml",
		WatchCatalog: true,
		LogLevel:     "info",
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Store: StoreConfig{
			Backend:     BackendSQLite,
			DynamoTable: "studio-submissions",
			Region:      "us-east-1",
		},
		Mail: MailConfig{
			Port:     587,
			FromName: "Studio Glow",
		},
		Carousel: CarouselConfig{
			HeroIntervalMS:        int(DefaultHeroInterval / time.Millisecond),
			TestimonialIntervalMS: int(DefaultTestimonialInterval / time.Millisecond),
			TransitionLockMS:      int(DefaultTransitionLock / time.Millisecond),
		},
		Viewport: ViewportConfig{
			MobileBreakpoint: DefaultMobileBreakpoint,
		},
		Session: SessionConfig{
			IdleTimeoutMinutes: 30,
		},
	}
}

// HeroInterval returns the hero autoplay period.
func (c CarouselConfig) HeroInterval() time.Duration {
	return time.Duration(c.HeroIntervalMS) * time.Millisecond
}

// TestimonialInterval returns the testimonials autoplay period.
func (c CarouselConfig) TestimonialInterval() time.Duration {
	return time.Duration(c.TestimonialIntervalMS) * time.Millisecond
}

// TransitionLock returns how long navigation stays locked after a slide change.
func (c CarouselConfig) TransitionLock() time.Duration {
	return time.Duration(c.TransitionLockMS) * time.Millisecond
}

// IdleTimeout returns how long an unattended view session survives.
func (s SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
