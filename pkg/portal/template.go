package portal

import "html/template"

//nolint:gochecknoglobals // Parsed once at startup
var pageTemplate = template.Must(template.New("portal").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="{{.UI.LangAttr}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  :root{
    --bg:#F7F9FC;--text:#1F2937;--accent:#059669;--card:#FFFFFF;
    --light-accent:#E6F4F1;--gray:#6B7280;--slate-800:#1e293b;
    --shadow:0 1px 3px rgba(0,0,0,.1),0 1px 2px rgba(0,0,0,.06);
  }
  *{box-sizing:border-box}
  body{margin:0;font-family:-apple-system,'Segoe UI','Noto Sans KR',sans-serif;background:var(--bg);color:var(--text);line-height:1.6}
  header{background:var(--card);box-shadow:var(--shadow);padding:1rem 2rem;display:flex;justify-content:space-between;align-items:center}
  header nav a{margin-left:1.25rem;color:var(--text);text-decoration:none;font-weight:600}
  main{max-width:960px;margin:0 auto;padding:2rem}
  .hero{text-align:center;padding:3rem 1rem}
  .hero h1{font-size:2rem;margin:0 0 .5rem;color:var(--slate-800)}
  .hero p{color:var(--gray)}
  section{background:var(--card);border-radius:12px;box-shadow:var(--shadow);padding:2rem;margin-bottom:2rem}
  section h2{margin-top:0;color:var(--slate-800)}
  .assignment{border-top:1px solid var(--light-accent);padding-top:1.5rem;margin-top:1.5rem}
  .assignment:first-of-type{border-top:none;padding-top:0;margin-top:0}
  .assignment h3{color:var(--accent);margin:0 0 .5rem}
  .assignment h4{margin:1.25rem 0 .5rem}
  .resource-link{color:var(--accent);font-weight:600;text-decoration:none}
  .resource-meta{color:var(--gray);font-size:.85rem;margin-left:.5rem}
  .resource-desc{display:block;color:var(--gray);font-size:.9rem}
  .dim{color:var(--gray)}
  .cta{display:inline-block;background:var(--accent);color:#fff;padding:.75rem 1.75rem;border-radius:8px;text-decoration:none;font-weight:700}
  footer{text-align:center;color:var(--gray);padding:2rem;font-size:.85rem}
</style>
</head>
<body>
<header>
  <strong>{{.Company}}</strong>
  <nav>
    <a href="#intro">{{.UI.NavIntro}}</a>
    <a href="#assignments">{{.UI.NavAssignments}}</a>
    {{if .SiteURL}}<a href="{{.SiteURL}}">{{.SiteURL}}</a>{{end}}
  </nav>
</header>
<main>
  <div class="hero">
    <h1>{{.HeroRole}}</h1>
    <p>{{.Intro.AssignmentChoice}}</p>
  </div>

  <section id="intro">
    <h2>{{.Intro.IntroTitle}}</h2>
    <p>{{.Intro.IntroBody}}</p>
    <h4>{{.Intro.AIGuidanceTitle}}</h4>
    <p>{{.Intro.AIGuidanceBody}}</p>
    <p class="dim">{{.Intro.AIGuidanceNote}}</p>
  </section>

  {{if .Research}}
  <section id="research">
    <h2>{{.UI.ResearchHeading}}</h2>
    {{range .Research}}<p>{{.}}</p>{{end}}
  </section>
  {{end}}

  <section id="assignments">
    <h2>{{.UI.AssignmentsHeading}}</h2>
    <p class="dim">{{.UI.AssignmentsSub}}</p>
    {{if not .Assignments}}<p class="dim">{{.UI.AssignmentsEmpty}}</p>{{end}}
    {{range .Assignments}}
    <article class="assignment">
      <h3>{{.Title}}</h3>
      {{if .Summary}}<p>{{.Summary}}</p>{{end}}

      <h4>{{$.UI.MissionHeading}}</h4>
      <p>{{.Mission}}</p>

      {{if .Requirements}}
      <h4>{{$.UI.RequirementsHeading}}</h4>
      <ul>{{range .Requirements}}<li>{{.}}</li>{{end}}</ul>
      {{end}}

      {{if .Deliverables}}
      <h4>{{$.UI.DeliverablesHeading}}</h4>
      <ul>{{range .Deliverables}}<li>{{.}}</li>{{end}}</ul>
      {{end}}

      {{if .Evaluation}}
      <h4>{{$.UI.EvaluationHeading}}</h4>
      <ul>{{range .Evaluation}}<li>{{.}}</li>{{end}}</ul>
      {{end}}

      <h4>{{$.UI.DatasetsHeading}}</h4>
      <ul>
        {{range .Datasets}}
        <li>
          <a class="resource-link" href="{{.Href}}" download>{{.Name}}</a>
          {{if .Meta}}<span class="resource-meta">{{.Meta}}</span>{{end}}
          {{if .Description}}<span class="resource-desc">{{.Description}}</span>{{end}}
        </li>
        {{end}}
      </ul>

      <h4>{{$.UI.StarterHeading}}</h4>
      {{if .Starter}}
      <p>
        <a class="resource-link" href="{{.Starter.Href}}" download>{{.Starter.Name}}</a>
        {{if .Starter.Meta}}<span class="resource-meta">{{.Starter.Meta}}</span>{{end}}
        {{if .Starter.Description}}<span class="resource-desc">{{.Starter.Description}}</span>{{end}}
      </p>
      {{else}}<p class="dim">{{$.UI.StarterMissing}}</p>{{end}}

      {{if .DiscussionQuestions}}
      <h4>{{$.UI.QuestionsHeading}}</h4>
      <ol>{{range .DiscussionQuestions}}<li>{{.}}</li>{{end}}</ol>
      {{end}}
    </article>
    {{end}}
  </section>

  <section id="apply">
    <h2>{{.UI.ApplyTitle}}</h2>
    <p>{{.UI.ApplyBody}}</p>
    {{if .ApplyURL}}<a class="cta" href="{{.ApplyURL}}">{{.UI.ApplyCTA}}</a>{{end}}
  </section>
</main>
<footer>{{.Title}}</footer>
</body>
</html>
`
