// Package settingsapp provides the admin api for site settings and the
// published contact details.
package settingsapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	settingsBus *settingsbus.Core
	contactBus  *contactbus.Core
}

func newApp(settingsBus *settingsbus.Core, contactBus *contactbus.Core) *app {
	return &app{
		settingsBus: settingsBus,
		contactBus:  contactBus,
	}
}

func (a *app) querySettings(ctx context.Context, r *http.Request) web.Encoder {
	set, appErr := a.settingsForClient(ctx)
	if appErr != nil {
		return appErr
	}

	return toAppSettings(set)
}

func (a *app) updateSettings(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateSettings
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	set, appErr := a.settingsForClient(ctx)
	if appErr != nil {
		return appErr
	}

	us, err := toBusUpdateSettings(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updSet, err := a.settingsBus.Update(ctx, set, us)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: clientID[%s] us[%+v]: %s", set.ClientID, us, err)
	}

	return toAppSettings(updSet)
}

func (a *app) queryContact(ctx context.Context, r *http.Request) web.Encoder {
	ci, appErr := a.contactForClient(ctx)
	if appErr != nil {
		return appErr
	}

	return toAppContactInfo(ci)
}

func (a *app) updateContact(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateContactInfo
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ci, appErr := a.contactForClient(ctx)
	if appErr != nil {
		return appErr
	}

	uc, err := toBusUpdateContactInfo(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updCI, err := a.contactBus.Update(ctx, ci, uc)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: clientID[%s] uc[%+v]: %s", ci.ClientID, uc, err)
	}

	return toAppContactInfo(updCI)
}

func (a *app) settingsForClient(ctx context.Context) (settingsbus.Settings, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return settingsbus.Settings{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	set, err := a.settingsBus.QueryByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, settingsbus.ErrNotFound) {
			return settingsbus.Settings{}, errs.New(errs.NotFound, err)
		}
		return settingsbus.Settings{}, errs.Errorf(errs.InternalOnlyLog, "querysettings: clientID[%s]: %s", clientID, err)
	}

	return set, nil
}

func (a *app) contactForClient(ctx context.Context) (contactbus.ContactInfo, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return contactbus.ContactInfo{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	ci, err := a.contactBus.QueryByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, contactbus.ErrNotFound) {
			return contactbus.ContactInfo{}, errs.New(errs.NotFound, err)
		}
		return contactbus.ContactInfo{}, errs.Errorf(errs.InternalOnlyLog, "querycontact: clientID[%s]: %s", clientID, err)
	}

	return ci, nil
}
