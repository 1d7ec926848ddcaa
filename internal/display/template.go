package display

import "github.com/matu-sky/qrcode1/models"

// ResolveTemplate decides the presentation container for a content type and
// a requested template from the link.
//
// Contact cards and menus have a fixed presentation and ignore the request
// entirely. All other types pass the request through; when no template was
// requested the content-type default applies (bank-info-card for payment,
// memo otherwise), mirroring the producer side's tab-switch defaults.
func ResolveTemplate(contentType models.ContentType, requested models.Template) models.Template {
	switch contentType {
	case models.VCard:
		return models.TemplateBusinessCard
	case models.Menu:
		return models.TemplateMenuTemplate
	}

	if requested == "" {
		return models.DefaultTemplate(contentType)
	}

	return requested
}
