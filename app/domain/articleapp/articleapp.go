// Package articleapp provides the admin api for managing blog articles.
package articleapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	articleBus *articlebus.Core
}

func newApp(articleBus *articlebus.Core) *app {
	return &app{
		articleBus: articleBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewArticle
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	na, err := toBusNewArticle(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	art, err := a.articleBus.Create(ctx, clientID, na)
	if err != nil {
		if errors.Is(err, articlebus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, articlebus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: na[%+v]: %s", na, err)
	}

	return toAppArticle(art)
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateArticle
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	art, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	ua, err := toBusUpdateArticle(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updArt, err := a.articleBus.Update(ctx, art, ua)
	if err != nil {
		if errors.Is(err, articlebus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, articlebus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: articleID[%s] ua[%+v]: %s", art.ID, ua, err)
	}

	return toAppArticle(updArt)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	art, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.articleBus.Delete(ctx, art); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: articleID[%s]: %s", art.ID, err)
	}

	return nil
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		return errs.NewFieldErrors("filter", err)
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, articlebus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	arts, err := a.articleBus.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.articleBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppArticles(arts), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	art, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	return toAppArticle(art)
}

func (a *app) queryByIDFromRequest(ctx context.Context, r *http.Request) (articlebus.Article, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return articlebus.Article{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	articleID, err := uuid.Parse(web.Param(r, "article_id"))
	if err != nil {
		return articlebus.Article{}, errs.NewFieldErrors("article_id", err)
	}

	art, err := a.articleBus.QueryByID(ctx, clientID, articleID)
	if err != nil {
		if errors.Is(err, articlebus.ErrNotFound) {
			return articlebus.Article{}, errs.New(errs.NotFound, err)
		}
		return articlebus.Article{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: articleID[%s]: %s", articleID, err)
	}

	return art, nil
}
