package articlebus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

// Article represents a blog post published on a tenant site.
type Article struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Title     name.Name
	TitleAr   name.Name
	Slug      slug.Slug
	Excerpt   string
	Content   string
	ImageURL  weburl.Null
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewArticle contains information needed to create a new article.
type NewArticle struct {
	Title     name.Name
	TitleAr   name.Name
	Slug      slug.Slug
	Excerpt   string
	Content   string
	ImageURL  weburl.Null
	Published bool
}

// UpdateArticle contains information needed to update an article.
type UpdateArticle struct {
	Title     *name.Name
	TitleAr   *name.Name
	Slug      *slug.Slug
	Excerpt   *string
	Content   *string
	ImageURL  *weburl.Null
	Published *bool
}
