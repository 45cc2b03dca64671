// Package content maps website intents ("show the homepage", "show the product
// page") onto CMS endpoints and decodes the records they return.
//
// Each content type is a Source with a published ("display") endpoint and a
// draft ("preview") endpoint. Preview is used only when the caller asks for it
// and the page query carries the source's type marker, e.g. ?type=mainPage.
//
// Records hold every section twice: the live value and a "Temp" draft value.
// SelectByPublish picks between them using the record's isPublish flag, and
// the typed accessors (CarouselImages, BasicInfo, Scenarios, ...) apply it per
// section.
package content
