package site

const heroFragment = `{{define "hero"}}<div class="hero{{if not .State.Enabled}} hero-empty{{end}}{{if .State.Transitioning}} sliding{{end}}" data-active="{{.State.ActiveIndex}}">
{{- range $i, $s := .Slides}}
  <article class="slide{{if eq $i $.State.ActiveIndex}} active{{end}}" style="background-image:url('{{$s.Image}}')" aria-hidden="{{if eq $i $.State.ActiveIndex}}false{{else}}true{{end}}">
    <div class="slide-body">
      <h1>{{$s.Title}}</h1>
      {{if $s.Subtitle}}<p>{{$s.Subtitle}}</p>{{end}}
      {{if $s.CTA}}<a class="button" href="{{$s.CTALink}}">{{$s.CTA}}</a>{{end}}
    </div>
  </article>
{{- end}}
{{- if gt .State.ItemCount 1}}
  <button class="nav prev" data-event="hero.prev" aria-label="Previous slide">&#8249;</button>
  <button class="nav next" data-event="hero.next" aria-label="Next slide">&#8250;</button>
  <ol class="dots">
  {{- range $i, $s := .Slides}}
    <li><button class="dot{{if eq $i $.State.ActiveIndex}} active{{end}}" data-event="hero.goto" data-index="{{$i}}" aria-label="Slide {{add $i 1}}"></button></li>
  {{- end}}
  </ol>
{{- end}}
</div>{{end}}`

const testimonialsFragment = `{{define "testimonials"}}<div class="testimonials" data-active="{{.State.ActiveIndex}}">
{{- if not .State.Enabled}}
  <p class="empty">No testimonials yet.</p>
{{- end}}
{{- range $i, $t := .Items}}
  <blockquote class="testimonial{{if eq $i $.State.ActiveIndex}} active{{end}}">
    {{if $t.Avatar}}<img class="avatar" src="{{$t.Avatar}}" alt="{{$t.Name}}">{{end}}
    <p class="quote">{{$t.Quote}}</p>
    <span class="rating" aria-label="{{$t.Rating}} out of 5">{{stars $t.Rating}}</span>
    <footer>{{$t.Name}}{{if $t.Role}}, <span class="role">{{$t.Role}}</span>{{end}}</footer>
  </blockquote>
{{- end}}
{{- if gt .State.ItemCount 1}}
  <div class="controls">
    <button class="nav prev" data-event="testimonials.prev" aria-label="Previous testimonial">&#8249;</button>
    {{- range $i, $t := .Items}}
    <button class="dot{{if eq $i $.State.ActiveIndex}} active{{end}}" data-event="testimonials.goto" data-index="{{$i}}" aria-label="Testimonial {{add $i 1}}"></button>
    {{- end}}
    <button class="nav next" data-event="testimonials.next" aria-label="Next testimonial">&#8250;</button>
  </div>
{{- end}}
</div>{{end}}`

const galleryFragment = `{{define "gallery"}}<div class="gallery view-{{.Snap.View}}">
{{- if eq .Snap.View "browsing"}}
  <div class="picker">
  {{- range $i, $e := .Picker}}
    <button class="picker-card" data-event="gallery.select" data-category="{{$e.Category}}" data-preview="{{$i}}">
      <span class="icon">{{$e.Icon}}</span>
      <span class="title">{{$e.Title}}</span>
    </button>
  {{- end}}
  </div>
{{- else}}
  <header class="detail-head">
    <button class="back" data-event="gallery.back">&#8592; All categories</button>
    <h2>{{.Snap.Category}}</h2>
    <nav class="tabs">
      <button class="tab{{if eq .Snap.Tab "images"}} active{{end}}" data-event="gallery.tab" data-tab="images">Photos</button>
      <button class="tab{{if eq .Snap.Tab "videos"}} active{{end}}" data-event="gallery.tab" data-tab="videos">Films</button>
    </nav>
  </header>
  {{- if .Snap.Empty}}
  <p class="empty">Nothing in {{.Snap.Category}} yet. Check back soon.</p>
  {{- else}}
  <div class="grid">
  {{- range $i, $u := .Snap.Items}}
    {{- if eq $.Snap.Tab "videos"}}
    <button class="thumb video" data-event="gallery.open" data-kind="video" data-index="{{$i}}"><video src="{{$u}}" muted preload="metadata"></video></button>
    {{- else}}
    <button class="thumb" data-event="gallery.open" data-kind="image" data-index="{{$i}}"><img src="{{$u}}" alt="{{$.Snap.Category}} {{add $i 1}}" loading="lazy"></button>
    {{- end}}
  {{- end}}
  </div>
  {{- end}}
  {{- with .Snap.Lightbox}}{{if .Kind}}
  <div class="lightbox" role="dialog" aria-modal="true">
    <button class="close" data-event="gallery.close" aria-label="Close">&times;</button>
    <button class="nav prev" data-event="gallery.prev" aria-label="Previous">&#8249;</button>
    {{- if eq .Kind "video"}}
    <video class="stage" src="{{.URL}}" controls autoplay></video>
    {{- else}}
    <img class="stage" src="{{.URL}}" alt="{{$.Snap.Category}} {{add .Index 1}}">
    {{- end}}
    <button class="nav next" data-event="gallery.next" aria-label="Next">&#8250;</button>
    <span class="counter">{{add .Index 1}} / {{len $.Snap.Items}}</span>
    {{- if eq .Kind "image"}}
    <div class="strip">
    {{- $cur := .Index}}
    {{- range $i, $u := $.Snap.Items}}
      <button class="strip-thumb{{if eq $i $cur}} active{{end}}" data-event="gallery.jump" data-index="{{$i}}"><img src="{{$u}}" alt=""></button>
    {{- end}}
    </div>
    {{- end}}
  </div>
  {{- end}}{{end}}
{{- end}}
</div>{{end}}`

const previewsFragment = `{{define "previews"}}<div class="previews{{if .Mobile}} mobile{{end}}">
{{- range .Cards}}
  <figure class="preview{{if .Preview.Playing}} playing{{end}}" data-preview="{{.Preview.Index}}" data-playing="{{.Preview.Playing}}"{{if .Preview.Rewind}} data-rewind="true"{{end}}>
    {{if .Entry.Preview}}<video src="{{.Entry.Preview}}" muted loop playsinline preload="metadata"{{if .Preview.Playing}} autoplay{{end}}></video>{{end}}
    <figcaption>{{.Entry.Title}}</figcaption>
  </figure>
{{- end}}
</div>{{end}}`
