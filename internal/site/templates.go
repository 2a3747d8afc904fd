package site

// layoutTemplate wraps every public page. Pages define "content".
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.Studio.Name}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body data-session="{{.Session}}">
  <header class="top-bar">
    <a class="brand" href="/">{{.Studio.Name}}</a>
    <nav class="menu">
      <a href="/"{{if eq .Page "home"}} class="current"{{end}}>Home</a>
      <a href="/services"{{if eq .Page "services"}} class="current"{{end}}>Services</a>
      <a href="/courses"{{if eq .Page "courses"}} class="current"{{end}}>Courses</a>
      <a href="/gallery"{{if eq .Page "gallery"}} class="current"{{end}}>Gallery</a>
      <a href="/partner"{{if eq .Page "partner"}} class="current"{{end}}>Partner</a>
      <a href="/contact"{{if eq .Page "contact"}} class="current"{{end}}>Contact</a>
    </nav>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <span class="sun-icon">&#9728;</span><span class="moon-icon">&#9790;</span>
    </button>
  </header>
  <main class="content">
{{template "content" .}}
  </main>
  <footer class="site-footer">
    <form class="newsletter" data-form="newsletter">
      <label for="newsletter-email">Stay in the loop</label>
      <input id="newsletter-email" type="email" name="email" placeholder="you@example.com" required>
      <button type="submit">Subscribe</button>
      <p class="form-status" role="status"></p>
    </form>
    <address>
      {{with .Studio.Email}}<a href="mailto:{{.}}">{{.}}</a>{{end}}
      {{with .Studio.Phone}}<span>{{.}}</span>{{end}}
      {{with .Studio.Address}}<span>{{.}}</span>{{end}}
    </address>
    <p>&copy; {{.Year}} {{.Studio.Name}}{{with .Studio.Tagline}} &middot; {{.}}{{end}}</p>
  </footer>
  <script src="/static/app.js"></script>
</body>
</html>{{end}}`

const homePage = `{{define "content"}}
<section class="hero-wrap" data-fragment="hero" data-pause="hero">{{.Fragments.Hero}}</section>
<section class="services-preview">
  <h2>What we do</h2>
  <div class="cards">
  {{- range .Services}}
    <a class="card" href="/services#{{.ID}}">
      <span class="icon">{{.Icon}}</span>
      <h3>{{.Title}}</h3>
      <p>{{.Summary}}</p>
    </a>
  {{- end}}
  </div>
  <a class="button" href="/services">All services</a>
</section>
<section class="testimonials-wrap" data-fragment="testimonials" data-pause="testimonials">
  <h2>Kind words</h2>
  {{.Fragments.Testimonials}}
</section>
{{end}}`

const servicesPage = `{{define "content"}}
<h1>Services</h1>
{{- range .Services}}
<article class="service" id="{{.ID}}">
  <h2><span class="icon">{{.Icon}}</span> {{.Title}}</h2>
  {{with .Price}}<p class="price">{{.}}</p>{{end}}
  <div class="description">{{markdown .Description}}</div>
  {{- if .Features}}
  <ul class="features">{{range .Features}}<li>{{.}}</li>{{end}}</ul>
  {{- end}}
  <a class="button" href="/contact?service={{.ID}}">Book {{.Title}}</a>
</article>
{{- else}}
<p class="empty">Our service list is being updated.</p>
{{- end}}
{{end}}`

const coursesPage = `{{define "content"}}
<h1>Courses</h1>
{{- range .Courses}}
<article class="course" id="{{.ID}}">
  <h2>{{.Title}}</h2>
  <p class="meta">{{with .Level}}<span>{{.}}</span>{{end}}{{with .Duration}}<span>{{.}}</span>{{end}}{{with .Price}}<span class="price">{{.}}</span>{{end}}</p>
  <div class="description">{{markdown .Description}}</div>
  {{- if .Syllabus}}
  <ol class="syllabus">{{range .Syllabus}}<li>{{.}}</li>{{end}}</ol>
  {{- end}}
</article>
{{- else}}
<p class="empty">New courses are coming soon.</p>
{{- end}}
{{end}}`

const galleryPage = `{{define "content"}}
<h1>Portfolio</h1>
<section class="previews-wrap" data-fragment="previews">{{.Fragments.Previews}}</section>
<section class="gallery-wrap" data-fragment="gallery">{{.Fragments.Gallery}}</section>
{{end}}`

const contactPage = `{{define "content"}}
<h1>Contact us</h1>
<form class="submission" data-form="contact">
  <label>Name <input name="name" required></label>
  <label>Email <input type="email" name="email" required></label>
  <label>Phone <input type="tel" name="phone"></label>
  <label>Service
    <select name="service">
      <option value="">Not sure yet</option>
      {{- $sel := .Selected}}
      {{- range .Services}}
      <option value="{{.Title}}"{{if eq .ID $sel}} selected{{end}}>{{.Title}}</option>
      {{- end}}
    </select>
  </label>
  <label>Message <textarea name="message" rows="6" required></textarea></label>
  <button type="submit">Send</button>
  <p class="form-status" role="status"></p>
</form>
{{end}}`

const partnerPage = `{{define "content"}}
<h1>Partner with us</h1>
<p>Venues, planners and brands: tell us about your work.</p>
<form class="submission" data-form="partner">
  <label>Name <input name="name" required></label>
  <label>Email <input type="email" name="email" required></label>
  <label>Company <input name="company" required></label>
  <label>Phone <input type="tel" name="phone"></label>
  <label>How could we work together? <textarea name="message" rows="6"></textarea></label>
  <button type="submit">Send</button>
  <p class="form-status" role="status"></p>
</form>
{{end}}`

const cssContent = `:root {
  --bg: #fdfcfa; --fg: #1d1b19; --muted: #6f6a64; --accent: #c2893b;
  --card: #ffffff; --border: #e8e3dc;
}
[data-theme="dark"] {
  --bg: #121110; --fg: #f1ede7; --muted: #a39d95; --accent: #e0a95a;
  --card: #1c1a18; --border: #2c2926;
}
* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--fg); font-family: system-ui, sans-serif; }
a { color: var(--accent); }
.top-bar { display: flex; align-items: center; gap: 1.5rem; padding: 1rem 2rem; border-bottom: 1px solid var(--border); }
.brand { font-weight: 700; text-decoration: none; color: var(--fg); }
.menu { display: flex; gap: 1rem; flex: 1; }
.menu a { text-decoration: none; color: var(--muted); }
.menu a.current { color: var(--fg); }
.theme-toggle { background: none; border: 1px solid var(--border); border-radius: 999px; color: var(--fg); cursor: pointer; }
[data-theme="light"] .moon-icon, [data-theme="dark"] .sun-icon { display: none; }
.content { max-width: 1200px; margin: 0 auto; padding: 2rem; }
.button { display: inline-block; padding: .6rem 1.2rem; border-radius: 4px; background: var(--accent); color: #fff; text-decoration: none; }
.hero { position: relative; height: 70vh; overflow: hidden; border-radius: 8px; }
.slide { position: absolute; inset: 0; background-size: cover; background-position: center; opacity: 0; transition: opacity .7s ease; }
.slide.active { opacity: 1; }
.slide-body { position: absolute; left: 3rem; bottom: 4rem; color: #fff; text-shadow: 0 2px 8px rgba(0,0,0,.5); }
.nav { position: absolute; top: 50%; transform: translateY(-50%); background: rgba(0,0,0,.4); color: #fff; border: 0; font-size: 2rem; cursor: pointer; }
.nav.prev { left: 1rem; } .nav.next { right: 1rem; }
.dots { position: absolute; bottom: 1rem; left: 50%; transform: translateX(-50%); display: flex; gap: .5rem; list-style: none; padding: 0; }
.dot { width: 10px; height: 10px; border-radius: 50%; border: 0; background: rgba(255,255,255,.5); cursor: pointer; }
.dot.active { background: #fff; }
.cards, .picker, .previews { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.card, .picker-card { background: var(--card); border: 1px solid var(--border); border-radius: 8px; padding: 1.2rem; color: var(--fg); text-decoration: none; cursor: pointer; }
.testimonials { position: relative; text-align: center; }
.testimonial { display: none; }
.testimonial.active { display: block; }
.testimonials .controls { display: flex; justify-content: center; gap: .5rem; }
.testimonials .nav, .testimonials .dot { position: static; transform: none; background: var(--border); }
.testimonials .dot.active { background: var(--accent); }
.rating { color: var(--accent); }
.avatar { width: 64px; height: 64px; border-radius: 50%; object-fit: cover; }
.tabs { display: flex; gap: .5rem; }
.tab { border: 1px solid var(--border); background: none; color: var(--fg); padding: .4rem 1rem; cursor: pointer; }
.tab.active { background: var(--accent); color: #fff; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: .5rem; }
.thumb { border: 0; padding: 0; cursor: pointer; background: none; }
.thumb img, .thumb video { width: 100%; aspect-ratio: 1; object-fit: cover; }
.lightbox { position: fixed; inset: 0; background: rgba(0,0,0,.92); display: flex; flex-direction: column; align-items: center; justify-content: center; z-index: 10; }
.lightbox .stage { max-width: 90vw; max-height: 75vh; }
.lightbox .close { position: absolute; top: 1rem; right: 1.5rem; font-size: 2rem; color: #fff; background: none; border: 0; cursor: pointer; }
.lightbox .counter { color: #ccc; margin: .5rem; }
.strip { display: flex; gap: .25rem; overflow-x: auto; max-width: 90vw; }
.strip-thumb { border: 2px solid transparent; padding: 0; background: none; cursor: pointer; }
.strip-thumb.active { border-color: var(--accent); }
.strip-thumb img { height: 56px; }
.preview video { width: 100%; border-radius: 8px; }
.empty { color: var(--muted); font-style: italic; }
.submission { display: grid; gap: 1rem; max-width: 560px; }
.submission input, .submission textarea, .submission select, .newsletter input { width: 100%; padding: .5rem; background: var(--card); color: var(--fg); border: 1px solid var(--border); }
.form-status.error { color: #c0392b; }
.site-footer { border-top: 1px solid var(--border); padding: 2rem; color: var(--muted); }
@media (max-width: 1023px) {
  .top-bar { flex-wrap: wrap; }
  .hero { height: 50vh; }
}
`

const jsContent = `(function() {
  var html = document.documentElement;
  var body = document.body;
  var session = body.getAttribute("data-session");

  // Theme toggle. The server keeps the preference in a cookie.
  var toggle = document.getElementById("theme-toggle");
  if (toggle) {
    toggle.addEventListener("click", function() {
      fetch("/api/settings/theme", { method: "POST", headers: { "Content-Type": "application/json" }, body: "{}" })
        .then(function(r) { return r.json(); })
        .then(function(p) { html.setAttribute("data-theme", p.dark_mode ? "dark" : "light"); });
    });
  }

  // View session channel.
  var ws = null;
  var pending = [];

  function applyUpdate(u) {
    if (!u || u.type !== "update") return;
    if (u.session && u.session !== session) {
      session = u.session;
      body.setAttribute("data-session", session);
    }
    var frags = u.fragments || {};
    document.querySelectorAll("[data-fragment]").forEach(function(el) {
      var name = el.getAttribute("data-fragment");
      if (frags[name] === undefined) return;
      var heading = el.querySelector(":scope > h2");
      el.innerHTML = (heading ? heading.outerHTML : "") + frags[name];
    });
    syncPreviews(u.snapshot && u.snapshot.previews);
  }

  function syncPreviews(previews) {
    (previews || []).forEach(function(p) {
      var fig = document.querySelector('.preview[data-preview="' + p.index + '"] video');
      if (!fig) return;
      if (p.playing) { fig.play().catch(function() {}); return; }
      fig.pause();
      if (p.rewind) fig.currentTime = 0;
    });
  }

  function connect() {
    if (!session || !("WebSocket" in window)) return;
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    ws = new WebSocket(proto + "//" + location.host + "/ws/view?session=" + encodeURIComponent(session) + "&width=" + window.innerWidth);
    ws.onopen = function() {
      pending.splice(0).forEach(function(ev) { ws.send(JSON.stringify(ev)); });
    };
    ws.onmessage = function(msg) {
      try { applyUpdate(JSON.parse(msg.data)); } catch (e) {}
    };
    ws.onclose = function() {
      ws = null;
      setTimeout(connect, 2000);
    };
  }

  function send(ev) {
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify(ev));
      return;
    }
    if (!session) return;
    fetch("/api/view/" + encodeURIComponent(session) + "/events", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(ev)
    }).then(function(r) { return r.ok ? r.json() : null; }).then(applyUpdate).catch(function() {});
  }

  document.addEventListener("click", function(e) {
    var el = e.target.closest("[data-event]");
    if (!el) return;
    e.preventDefault();
    var ev = { type: el.getAttribute("data-event") };
    if (el.hasAttribute("data-index")) ev.index = parseInt(el.getAttribute("data-index"), 10);
    if (el.hasAttribute("data-category")) ev.category = el.getAttribute("data-category");
    if (el.hasAttribute("data-tab")) ev.tab = el.getAttribute("data-tab");
    if (el.hasAttribute("data-kind")) ev.kind = el.getAttribute("data-kind");
    send(ev);
  });

  document.addEventListener("keydown", function(e) {
    if (!document.querySelector(".lightbox")) return;
    if (e.key === "Escape") send({ type: "gallery.close" });
    if (e.key === "ArrowRight") send({ type: "gallery.next" });
    if (e.key === "ArrowLeft") send({ type: "gallery.prev" });
  });

  document.querySelectorAll("[data-pause]").forEach(function(el) {
    var target = el.getAttribute("data-pause");
    el.addEventListener("mouseenter", function() { send({ type: target + ".pause", paused: true }); });
    el.addEventListener("mouseleave", function() { send({ type: target + ".pause", paused: false }); });
  });

  document.addEventListener("mouseover", function(e) {
    var card = e.target.closest(".preview, .picker-card");
    if (!card || card.contains(e.relatedTarget)) return;
    var i = card.getAttribute("data-preview");
    if (i !== null) send({ type: "preview.hover", index: parseInt(i, 10) });
  });
  document.addEventListener("mouseout", function(e) {
    var card = e.target.closest(".preview, .picker-card");
    if (!card || card.contains(e.relatedTarget)) return;
    send({ type: "preview.leave" });
  });

  var resizeTimer = null;
  window.addEventListener("resize", function() {
    clearTimeout(resizeTimer);
    resizeTimer = setTimeout(function() { send({ type: "viewport.resize", width: window.innerWidth }); }, 150);
  });

  // Forms post to the submission API.
  document.querySelectorAll("form[data-form]").forEach(function(form) {
    form.addEventListener("submit", function(e) {
      e.preventDefault();
      var status = form.querySelector(".form-status");
      var data = {};
      new FormData(form).forEach(function(v, k) { data[k] = v; });
      fetch("/api/forms/" + form.getAttribute("data-form"), {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(data)
      }).then(function(r) {
        return r.json().then(function(body) { return { ok: r.ok, body: body }; });
      }).then(function(res) {
        status.classList.toggle("error", !res.ok);
        if (res.ok) {
          status.textContent = res.body.message || "Thank you!";
          form.reset();
          return;
        }
        var fields = res.body.fields ? Object.keys(res.body.fields).map(function(k) { return res.body.fields[k]; }) : [];
        status.textContent = fields.length ? fields.join(" ") : res.body.error;
      }).catch(function() {
        status.classList.add("error");
        status.textContent = "Something went wrong. Please try again in a moment.";
      });
    });
  });

  connect();
})();
`
