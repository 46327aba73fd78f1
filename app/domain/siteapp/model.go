package siteapp

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/phone"
)

// Settings is the public view of the tenant site configuration.
type Settings struct {
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
	AccentColor      string `json:"accentColor"`
	ShowCountries    bool   `json:"showCountries"`
	ShowUniversities bool   `json:"showUniversities"`
	ShowPrograms     bool   `json:"showPrograms"`
	ShowArticles     bool   `json:"showArticles"`
	ShowTestimonials bool   `json:"showTestimonials"`
	FacebookURL      string `json:"facebookUrl,omitempty"`
	InstagramURL     string `json:"instagramUrl,omitempty"`
	TwitterURL       string `json:"twitterUrl,omitempty"`
	YoutubeURL       string `json:"youtubeUrl,omitempty"`
}

// Encode implements the web.Encoder interface.
func (s Settings) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppSettings(bus settingsbus.Settings) Settings {
	return Settings{
		PrimaryColor:     bus.Theme.Primary.String(),
		SecondaryColor:   bus.Theme.Secondary.String(),
		AccentColor:      bus.Theme.Accent.String(),
		ShowCountries:    bus.ShowCountries,
		ShowUniversities: bus.ShowUniversities,
		ShowPrograms:     bus.ShowPrograms,
		ShowArticles:     bus.ShowArticles,
		ShowTestimonials: bus.ShowTestimonials,
		FacebookURL:      bus.FacebookURL.String(),
		InstagramURL:     bus.InstagramURL.String(),
		TwitterURL:       bus.TwitterURL.String(),
		YoutubeURL:       bus.YoutubeURL.String(),
	}
}

// ContactInfo is the public view of the tenant contact details.
type ContactInfo struct {
	Phones       []string `json:"phones"`
	Emails       []string `json:"emails"`
	Address      string   `json:"address,omitempty"`
	WorkingHours string   `json:"workingHours,omitempty"`
	Whatsapp     string   `json:"whatsapp,omitempty"`
	MapLink      string   `json:"mapLink,omitempty"`
}

// Encode implements the web.Encoder interface.
func (ci ContactInfo) Encode() ([]byte, string, error) {
	data, err := json.Marshal(ci)
	return data, "application/json", err
}

func toAppContactInfo(bus contactbus.ContactInfo) ContactInfo {
	return ContactInfo{
		Phones:       bus.Phones,
		Emails:       bus.Emails,
		Address:      bus.Address,
		WorkingHours: bus.WorkingHours,
		Whatsapp:     bus.Whatsapp.String(),
		MapLink:      bus.MapLink.String(),
	}
}

// =============================================================================
// Content views

// Country is the public view of a destination.
type Country struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameAr      string `json:"nameAr"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Encode implements the web.Encoder interface.
func (c Country) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppCountry(bus countrybus.Country) Country {
	return Country{
		ID:          bus.ID.String(),
		Name:        bus.Name.String(),
		NameAr:      bus.NameAr.String(),
		Slug:        bus.Slug.String(),
		Description: bus.Description,
		ImageURL:    bus.ImageURL.String(),
	}
}

func toAppCountries(ctrys []countrybus.Country) []Country {
	app := make([]Country, len(ctrys))
	for i, ctry := range ctrys {
		app[i] = toAppCountry(ctry)
	}
	return app
}

// University is the public view of an institution.
type University struct {
	ID          string `json:"id"`
	CountryID   string `json:"countryId"`
	Name        string `json:"name"`
	NameAr      string `json:"nameAr"`
	Slug        string `json:"slug"`
	City        string `json:"city"`
	LogoURL     string `json:"logoUrl,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`
	Ranking     int    `json:"ranking,omitempty"`
	Description string `json:"description"`
}

// Encode implements the web.Encoder interface.
func (u University) Encode() ([]byte, string, error) {
	data, err := json.Marshal(u)
	return data, "application/json", err
}

func toAppUniversity(bus universitybus.University) University {
	return University{
		ID:          bus.ID.String(),
		CountryID:   bus.CountryID.String(),
		Name:        bus.Name.String(),
		NameAr:      bus.NameAr.String(),
		Slug:        bus.Slug.String(),
		City:        bus.City,
		LogoURL:     bus.LogoURL.String(),
		WebsiteURL:  bus.WebsiteURL.String(),
		Ranking:     bus.Ranking,
		Description: bus.Description,
	}
}

func toAppUniversities(unis []universitybus.University) []University {
	app := make([]University, len(unis))
	for i, uni := range unis {
		app[i] = toAppUniversity(uni)
	}
	return app
}

// Program is the public view of a study program.
type Program struct {
	ID           string  `json:"id"`
	UniversityID string  `json:"universityId,omitempty"`
	CountryID    string  `json:"countryId,omitempty"`
	Name         string  `json:"name"`
	NameAr       string  `json:"nameAr"`
	Slug         string  `json:"slug"`
	Degree       string  `json:"degree"`
	Language     string  `json:"language"`
	TuitionFee   float64 `json:"tuitionFee,omitempty"`
	Duration     string  `json:"duration"`
	Description  string  `json:"description"`
}

// Encode implements the web.Encoder interface.
func (p Program) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppProgram(bus programbus.Program) Program {
	var universityID string
	if bus.UniversityID.Valid {
		universityID = bus.UniversityID.UUID.String()
	}

	var countryID string
	if bus.CountryID.Valid {
		countryID = bus.CountryID.UUID.String()
	}

	return Program{
		ID:           bus.ID.String(),
		UniversityID: universityID,
		CountryID:    countryID,
		Name:         bus.Name.String(),
		NameAr:       bus.NameAr.String(),
		Slug:         bus.Slug.String(),
		Degree:       bus.Degree,
		Language:     bus.Language,
		TuitionFee:   bus.TuitionFee,
		Duration:     bus.Duration,
		Description:  bus.Description,
	}
}

func toAppPrograms(prgs []programbus.Program) []Program {
	app := make([]Program, len(prgs))
	for i, prg := range prgs {
		app[i] = toAppProgram(prg)
	}
	return app
}

// Article is the public view of a published post.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	TitleAr     string `json:"titleAr"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl,omitempty"`
	DateCreated string `json:"dateCreated"`
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
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

func toAppArticles(arts []articlebus.Article) []Article {
	app := make([]Article, len(arts))
	for i, art := range arts {
		app[i] = toAppArticle(art)
	}
	return app
}

// Testimonial is the public view of a student quote.
type Testimonial struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	Country     string `json:"country"`
	Quote       string `json:"quote"`
	Rating      int    `json:"rating"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Encode implements the web.Encoder interface.
func (t Testimonial) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTestimonial(bus testimonialbus.Testimonial) Testimonial {
	return Testimonial{
		ID:          bus.ID.String(),
		StudentName: bus.StudentName.String(),
		Country:     bus.Country,
		Quote:       bus.Quote,
		Rating:      bus.Rating,
		ImageURL:    bus.ImageURL.String(),
	}
}

func toAppTestimonials(tsts []testimonialbus.Testimonial) []Testimonial {
	app := make([]Testimonial, len(tsts))
	for i, tst := range tsts {
		app[i] = toAppTestimonial(tst)
	}
	return app
}

// =============================================================================
// Lead capture

// NewConsultation defines the data captured by the consultation form.
type NewConsultation struct {
	FullName    string `json:"fullName" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
}

// Decode implements the web.Decoder interface.
func (app *NewConsultation) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewConsultation) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewConsultation(app NewConsultation) (consultationbus.NewConsultation, error) {
	fullName, err := name.Parse(app.FullName)
	if err != nil {
		return consultationbus.NewConsultation{}, fmt.Errorf("parse fullName: %w", err)
	}

	ph, err := phone.Parse(app.Phone)
	if err != nil {
		return consultationbus.NewConsultation{}, fmt.Errorf("parse phone: %w", err)
	}

	var addr *mail.Address
	if app.Email != "" {
		addr, err = mail.ParseAddress(app.Email)
		if err != nil {
			return consultationbus.NewConsultation{}, fmt.Errorf("parse email: %w", err)
		}
	}

	bus := consultationbus.NewConsultation{
		FullName:    fullName,
		Phone:       ph,
		Email:       addr,
		Destination: app.Destination,
		Message:     app.Message,
	}

	return bus, nil
}

// Consultation is the receipt returned for a captured lead.
type Consultation struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	DateCreated string `json:"dateCreated"`
}

// Encode implements the web.Encoder interface.
func (c Consultation) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppConsultation(bus consultationbus.Consultation) Consultation {
	return Consultation{
		ID:          bus.ID.String(),
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

// NewMessage defines the data captured by the contact form.
type NewMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *NewMessage) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewMessage) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewMessage(app NewMessage) (messagebus.NewMessage, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return messagebus.NewMessage{}, fmt.Errorf("parse name: %w", err)
	}

	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return messagebus.NewMessage{}, fmt.Errorf("parse email: %w", err)
	}

	bus := messagebus.NewMessage{
		Name:    nme,
		Email:   *addr,
		Subject: app.Subject,
		Body:    app.Message,
	}

	return bus, nil
}

// Message is the receipt returned for a captured contact message.
type Message struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	DateCreated string `json:"dateCreated"`
}

// Encode implements the web.Encoder interface.
func (m Message) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

func toAppMessage(bus messagebus.Message) Message {
	return Message{
		ID:          bus.ID.String(),
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}
