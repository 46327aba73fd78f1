// Package leadapp provides the admin api for working captured leads:
// consultation requests and contact messages.
package leadapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	consultationBus *consultationbus.Core
	messageBus      *messagebus.Core
}

func newApp(consultationBus *consultationbus.Core, messageBus *messagebus.Core) *app {
	return &app{
		consultationBus: consultationBus,
		messageBus:      messageBus,
	}
}

// =============================================================================
// Consultations

func (a *app) queryConsultations(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseConsultationFilter(qp)
	if err != nil {
		return errs.NewFieldErrors("filter", err)
	}

	orderBy, err := order.Parse(consultationOrderByFields, qp.OrderBy, consultationbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	cons, err := a.consultationBus.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.consultationBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppConsultations(cons), total, page)
}

func (a *app) updateConsultation(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateConsultation
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	con, appErr := a.consultationFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	uc, err := toBusUpdateConsultation(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updCon, err := a.consultationBus.Update(ctx, con, uc)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: consultationID[%s] uc[%+v]: %s", con.ID, uc, err)
	}

	return toAppConsultation(updCon)
}

func (a *app) deleteConsultation(ctx context.Context, r *http.Request) web.Encoder {
	con, appErr := a.consultationFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.consultationBus.Delete(ctx, con); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: consultationID[%s]: %s", con.ID, err)
	}

	return nil
}

// exportConsultations streams every consultation for the tenant as an xlsx
// workbook. No paging: the export is the whole book.
func (a *app) exportConsultations(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	pg, err := page.Parse("1", exportMaxRows)
	if err != nil {
		return errs.Errorf(errs.Internal, "page: %s", err)
	}

	cons, err := a.consultationBus.Query(ctx, clientID, consultationbus.QueryFilter{}, consultationbus.DefaultOrderBy, pg)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	book, err := buildConsultationWorkbook(cons)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "export: clientID[%s]: %s", clientID, err)
	}

	if w := web.GetWriter(ctx); w != nil {
		w.Header().Set("Content-Disposition", `attachment; filename="consultations.xlsx"`)
	}

	return book
}

func (a *app) consultationFromRequest(ctx context.Context, r *http.Request) (consultationbus.Consultation, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return consultationbus.Consultation{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	consultationID, err := uuid.Parse(web.Param(r, "consultation_id"))
	if err != nil {
		return consultationbus.Consultation{}, errs.NewFieldErrors("consultation_id", err)
	}

	con, err := a.consultationBus.QueryByID(ctx, clientID, consultationID)
	if err != nil {
		if errors.Is(err, consultationbus.ErrNotFound) {
			return consultationbus.Consultation{}, errs.New(errs.NotFound, err)
		}
		return consultationbus.Consultation{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: consultationID[%s]: %s", consultationID, err)
	}

	return con, nil
}

// =============================================================================
// Messages

func (a *app) queryMessages(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseMessageFilter(qp)
	if err != nil {
		return errs.NewFieldErrors("filter", err)
	}

	orderBy, err := order.Parse(messageOrderByFields, qp.OrderBy, messagebus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	msgs, err := a.messageBus.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.messageBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppMessages(msgs), total, page)
}

func (a *app) updateMessage(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateMessage
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	msg, appErr := a.messageFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	um, err := toBusUpdateMessage(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updMsg, err := a.messageBus.Update(ctx, msg, um)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: messageID[%s] um[%+v]: %s", msg.ID, um, err)
	}

	return toAppMessage(updMsg)
}

func (a *app) deleteMessage(ctx context.Context, r *http.Request) web.Encoder {
	msg, appErr := a.messageFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.messageBus.Delete(ctx, msg); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: messageID[%s]: %s", msg.ID, err)
	}

	return nil
}

func (a *app) messageFromRequest(ctx context.Context, r *http.Request) (messagebus.Message, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return messagebus.Message{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	messageID, err := uuid.Parse(web.Param(r, "message_id"))
	if err != nil {
		return messagebus.Message{}, errs.NewFieldErrors("message_id", err)
	}

	msg, err := a.messageBus.QueryByID(ctx, clientID, messageID)
	if err != nil {
		if errors.Is(err, messagebus.ErrNotFound) {
			return messagebus.Message{}, errs.New(errs.NotFound, err)
		}
		return messagebus.Message{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: messageID[%s]: %s", messageID, err)
	}

	return msg, nil
}
