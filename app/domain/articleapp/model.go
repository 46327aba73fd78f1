package articleapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

// Article represents a blog post in the admin api.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	TitleAr     string `json:"titleAr"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Published   bool   `json:"published"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (a Article) Encode() ([]byte, string, error) {
	data, err := json.Marshal(a)
	return data, "application/json", err
}

func toAppArticle(bus articlebus.Article) Article {
	return Article{
		ID:          bus.ID.String(),
		Title:       bus.Title.String(),
		TitleAr:     bus.TitleAr.String(),
		Slug:        bus.Slug.String(),
		Excerpt:     bus.Excerpt,
		Content:     bus.Content,
		ImageURL:    bus.ImageURL.String(),
		Published:   bus.Published,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppArticles(arts []articlebus.Article) []Article {
	app := make([]Article, len(arts))
	for i, art := range arts {
		app[i] = toAppArticle(art)
	}
	return app
}

// =============================================================================

// NewArticle defines the data needed to add a new article.
type NewArticle struct {
	Title     string `json:"title" validate:"required"`
	TitleAr   string `json:"titleAr" validate:"required"`
	Slug      string `json:"slug" validate:"required"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" validate:"required"`
	ImageURL  string `json:"imageUrl"`
	Published bool   `json:"published"`
}

// Decode implements the web.Decoder interface.
func (app *NewArticle) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewArticle) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewArticle(app NewArticle) (articlebus.NewArticle, error) {
	title, err := name.Parse(app.Title)
	if err != nil {
		return articlebus.NewArticle{}, fmt.Errorf("parse title: %w", err)
	}

	titleAr, err := name.Parse(app.TitleAr)
	if err != nil {
		return articlebus.NewArticle{}, fmt.Errorf("parse titleAr: %w", err)
	}

	slg, err := slug.Parse(app.Slug)
	if err != nil {
		return articlebus.NewArticle{}, fmt.Errorf("parse slug: %w", err)
	}

	img, err := weburl.ParseNull(app.ImageURL)
	if err != nil {
		return articlebus.NewArticle{}, fmt.Errorf("parse imageUrl: %w", err)
	}

	bus := articlebus.NewArticle{
		Title:     title,
		TitleAr:   titleAr,
		Slug:      slg,
		Excerpt:   app.Excerpt,
		Content:   app.Content,
		ImageURL:  img,
		Published: app.Published,
	}

	return bus, nil
}

// =============================================================================

// UpdateArticle defines the data needed to update an article.
type UpdateArticle struct {
	Title     *string `json:"title"`
	TitleAr   *string `json:"titleAr"`
	Slug      *string `json:"slug"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateArticle) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateArticle) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateArticle(app UpdateArticle) (articlebus.UpdateArticle, error) {
	var title *name.Name
	if app.Title != nil {
		t, err := name.Parse(*app.Title)
		if err != nil {
			return articlebus.UpdateArticle{}, fmt.Errorf("parse title: %w", err)
		}
		title = &t
	}

	var titleAr *name.Name
	if app.TitleAr != nil {
		t, err := name.Parse(*app.TitleAr)
		if err != nil {
			return articlebus.UpdateArticle{}, fmt.Errorf("parse titleAr: %w", err)
		}
		titleAr = &t
	}

	var slg *slug.Slug
	if app.Slug != nil {
		s, err := slug.Parse(*app.Slug)
		if err != nil {
			return articlebus.UpdateArticle{}, fmt.Errorf("parse slug: %w", err)
		}
		slg = &s
	}

	var img *weburl.Null
	if app.ImageURL != nil {
		u, err := weburl.ParseNull(*app.ImageURL)
		if err != nil {
			return articlebus.UpdateArticle{}, fmt.Errorf("parse imageUrl: %w", err)
		}
		img = &u
	}

	bus := articlebus.UpdateArticle{
		Title:     title,
		TitleAr:   titleAr,
		Slug:      slg,
		Excerpt:   app.Excerpt,
		Content:   app.Content,
		ImageURL:  img,
		Published: app.Published,
	}

	return bus, nil
}
