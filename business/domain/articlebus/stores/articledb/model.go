package articledb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

type articleDB struct {
	ID        uuid.UUID      `db:"article_id"`
	ClientID  uuid.UUID      `db:"client_id"`
	Title     string         `db:"title"`
	TitleAr   string         `db:"title_ar"`
	Slug      string         `db:"slug"`
	Excerpt   sql.NullString `db:"excerpt"`
	Content   string         `db:"content"`
	ImageURL  sql.NullString `db:"image_url"`
	Published bool           `db:"published"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func toDBArticle(bus articlebus.Article) articleDB {
	return articleDB{
		ID:       bus.ID,
		ClientID: bus.ClientID,
		Title:    bus.Title.String(),
		TitleAr:  bus.TitleAr.String(),
		Slug:     bus.Slug.String(),
		Excerpt: sql.NullString{
			String: bus.Excerpt,
			Valid:  bus.Excerpt != "",
		},
		Content:   bus.Content,
		ImageURL:  weburl.ToSQLNullString(bus.ImageURL),
		Published: bus.Published,
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusArticle(db articleDB) (articlebus.Article, error) {
	title, err := name.Parse(db.Title)
	if err != nil {
		return articlebus.Article{}, fmt.Errorf("parse title: %w", err)
	}

	titleAr, err := name.Parse(db.TitleAr)
	if err != nil {
		return articlebus.Article{}, fmt.Errorf("parse title_ar: %w", err)
	}

	slg, err := slug.Parse(db.Slug)
	if err != nil {
		return articlebus.Article{}, fmt.Errorf("parse slug: %w", err)
	}

	img, err := weburl.ParseNull(db.ImageURL.String)
	if err != nil {
		return articlebus.Article{}, fmt.Errorf("parse image url: %w", err)
	}

	bus := articlebus.Article{
		ID:        db.ID,
		ClientID:  db.ClientID,
		Title:     title,
		TitleAr:   titleAr,
		Slug:      slg,
		Excerpt:   db.Excerpt.String,
		Content:   db.Content,
		ImageURL:  img,
		Published: db.Published,
		CreatedAt: db.CreatedAt.In(time.Local),
		UpdatedAt: db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusArticles(dbs []articleDB) ([]articlebus.Article, error) {
	bus := make([]articlebus.Article, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusArticle(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
