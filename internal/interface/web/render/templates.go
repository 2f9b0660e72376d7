package render

import (
	"fmt"
	"html/template"
	"io"
)

// Renderer は各ビューのHTML断片を描画する
type Renderer struct {
	postingPage *template.Template
	newsList    *template.Template
	newsDetail  *template.Template
	indexWidget *template.Template
}

// NewRenderer は新しいRendererを作成します
func NewRenderer() *Renderer {
	return &Renderer{
		postingPage: template.Must(template.New("postingPage").Parse(postingPageTemplate)),
		newsList:    template.Must(template.New("newsList").Parse(newsListTemplate)),
		newsDetail:  template.Must(template.New("newsDetail").Parse(newsDetailTemplate)),
		indexWidget: template.Must(template.New("indexWidget").Parse(indexWidgetTemplate)),
	}
}

// PostingPage は求人ページの本文断片を描画する
func (r *Renderer) PostingPage(w io.Writer, view PostingPageView) error {
	if err := r.postingPage.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render posting page: %w", err)
	}
	return nil
}

// NewsList はお知らせ一覧の断片を描画する
func (r *Renderer) NewsList(w io.Writer, view NewsListView) error {
	if err := r.newsList.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render news list: %w", err)
	}
	return nil
}

// NewsDetail はお知らせ詳細の断片を描画する
func (r *Renderer) NewsDetail(w io.Writer, view NewsDetailView) error {
	if err := r.newsDetail.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render news detail: %w", err)
	}
	return nil
}

// IndexWidget はインデックスウィジェットの断片を描画する
func (r *Renderer) IndexWidget(w io.Writer, view IndexWidgetView) error {
	if err := r.indexWidget.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render index widget: %w", err)
	}
	return nil
}

const postingPageTemplate = `<section class="saiyou-section">
<h2 class="section-title">{{.Heading}}</h2>
<div class="content-wrapper">
<div class="results">
{{- if .Cards}}
{{- range .Cards}}
<div class="job-item">
<div class="job-meta">{{.Date}} | 採用情報</div>
<h3 class="job-title"><a href="{{.DetailURL}}">{{.Title}}</a></h3>
<div class="job-content">
<div class="job-image"><img src="{{.ImageURL}}" alt="{{.ImageAlt}}"></div>
<div class="job-summary">
<p>{{.Summary}}</p>
<p>会社名 – {{.CompanyName}}</p>
<p>給与 – {{.Salary}}</p>
<p>職種 – {{.JobType}}</p>
<p>勤務地 – {{.JobLocation}}</p>
<p>日本語レベル – {{.JapaneseLevel}}</p>
<p>年間最低休暇 – {{.MinimumLeave}} 日</p>
</div>
</div>
{{- if not .Last}}
<hr class="job-divider">
{{- end}}
</div>
{{- end}}
{{- else}}
<p>{{.Message}}</p>
{{- end}}
</div>
<aside class="filters">
<h2>フィルターを設定</h2>
<form action="/saiyou" method="GET">
<label>勤務地:
<select name="location">
<option value="">全て</option>
{{- range .Controls.Locations}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>
{{- end}}
</select>
</label>
<label>職種:
<select name="job_type">
<option value="">全て</option>
{{- range .Controls.JobTypes}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>
{{- end}}
</select>
</label>
<label>日本語レベル:
<select name="japanese_level">
<option value="">全て</option>
{{- range .Controls.JapaneseLevels}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>
{{- end}}
</select>
</label>
<label>カテゴリ:
<select name="job_category">
<option value="">全て</option>
{{- range .Controls.JobCategories}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>
{{- end}}
</select>
</label>
<button type="submit">適用</button>
</form>
</aside>
</div>
</section>
`

const newsListTemplate = `{{- if .ErrorMessage}}
<div class="news-error">{{.ErrorMessage}}</div>
{{- end}}
{{- if .ShowFilterBar}}
<div class="filter-bar">
<select id="categoryFilter" name="category">
<option value="all">全て</option>
{{- range .Categories}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>
{{- end}}
</select>
<select id="dateFilter" name="dateOrder">
<option value="desc"{{if .OrderDesc}} selected{{end}}>新しい順</option>
<option value="asc"{{if not .OrderDesc}} selected{{end}}>古い順</option>
</select>
</div>
{{- end}}
<div id="newsList">
{{- if .Cards}}
{{- range .Cards}}
<div class="news-item">
<div class="news-wrapper">
<div class="news-image">
<img src="{{.ImageURL}}" alt="{{.Title}}"{{if .ImageHeight}} style="height: {{.ImageHeight}}px"{{end}}>
</div>
<div class="news-content">
<div class="tag">
<span class="date">{{.Date}}</span>
<span class="category">{{.Category}}</span>
<span class="posted-by">Posted By: {{.PostedBy}}</span>
</div>
<div class="title">{{.Title}}</div>
<div class="summary">{{.ShortSummary}} <a href="{{.DetailURL}}" class="summary-link">もっと見る。。。</a></div>
</div>
</div>
</div>
{{- end}}
{{- else}}
<div>{{.Message}}</div>
{{- end}}
</div>
`

const newsDetailTemplate = `<div id="newsList">
{{- if .Found}}
<div class="news-item">
<div class="news-wrapper full-view-wrapper">
<div class="news-image">
<img src="{{.ImageURL}}" alt="{{.Title}}">
</div>
<div class="news-content">
<div class="tag">
<span class="date">{{.Date}}</span>
<span class="category">{{.Category}}</span>
<span class="posted-by">Posted By: {{.PostedBy}}</span>
</div>
<div class="title">{{.Title}}</div>
<div class="summary">{{.Content}}</div>
</div>
</div>
</div>
<div class="read-more-btn">
<a href="/news" class="read-more">おしらせへ戻る</a>
</div>
{{- else}}
<div>{{.Message}}</div>
{{- end}}
</div>
`

const indexWidgetTemplate = `<ul>
{{- if .Items}}
{{- range .Items}}
<li class="item">
<a href="{{.DetailURL}}" title="{{.Title}}">
<ul class="tag flex vcenter">
<li class="category">{{.Category}}</li>
<li class="date"><time datetime="{{.DateAttr}}">{{.DateDisplay}}</time></li>
</ul>
<dl>
<dt class="title"><div class="js-t8 line1">{{.Title}}</div></dt>
<dd class="summary">
<div class="pc js-t8 line1">{{.ShortSummary}}</div>
<div class="sp js-t8 line2">{{.ShortSummary}}</div>
</dd>
</dl>
</a>
</li>
{{- end}}
{{- else}}
<li>{{.Message}}</li>
{{- end}}
</ul>
`
