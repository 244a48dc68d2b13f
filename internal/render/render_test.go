package render

import (
	"testing"
	"time"

	"github.com/amigdala/cms-backend/internal/content"
	"github.com/stretchr/testify/require"
)

func doc(section string, body interface{}) *content.Document {
	return &content.Document{Section: section, UpdatedAt: time.Now().UTC(), Body: body}
}

func TestRenderOrdering(t *testing.T) {
	// deliberately shuffled input; storage order carries no meaning
	docs := []*content.Document{
		doc("contact", &content.ContactContent{Heading: "CONTACTO"}),
		doc("experience", &content.ExperienceContent{Heading: "EXPERIENCIA"}),
		doc("about", &content.AboutContent{Heading: "SOBRE MÍ"}),
		doc("approach", &content.ApproachContent{Heading: "ENFOQUE"}),
		doc("services", &content.ServicesContent{Heading: "SERVICIOS"}),
	}

	vms := Render(docs, nil)
	require.Len(t, vms, 5)
	keys := make([]string, len(vms))
	for i, vm := range vms {
		keys[i] = vm.SectionKey()
	}
	require.Equal(t, []string{"about", "services", "approach", "experience", "contact"}, keys)
}

func TestRenderDropsUnknownSections(t *testing.T) {
	docs := []*content.Document{
		doc("banner", map[string]interface{}{"text": "hi"}),
		doc("about", &content.AboutContent{Heading: "SOBRE MÍ"}),
		doc("testimonials", map[string]interface{}{}),
	}

	vms := Render(docs, nil)
	require.Len(t, vms, 1)
	require.Equal(t, "about", vms[0].SectionKey())
}

func TestRenderEmphasis(t *testing.T) {
	docs := []*content.Document{
		doc("about", &content.AboutContent{
			Heading:     "SOBRE MÍ",
			Paragraph1:  "Durante CASI 20 AÑOS buscando autoconocimiento y transformación.",
			Paragraph2:  "más de 13 años de crecimiento humano",
			Paragraph3:  "casi 20 años sin énfasis aquí",
			ClosingText: "mi consultora Amigdala te espera",
		}),
	}

	vms := Render(docs, nil)
	require.Len(t, vms, 1)
	about := vms[0].(AboutView)

	// matched case is preserved inside the markup
	require.Equal(t, "Durante <b>CASI 20 AÑOS</b> buscando <b>autoconocimiento</b> y <b>transformación</b>.", about.Paragraph1)
	require.Equal(t, "<b>más de 13 años</b> de <b>crecimiento humano</b>", about.Paragraph2)
	// paragraph3 gets no emphasis treatment
	require.Equal(t, "casi 20 años sin énfasis aquí", about.Paragraph3)
	require.Equal(t, "mi consultora <b>Amigdala</b> te espera", about.ClosingText)
}

func TestRenderDoesNotMutateStoredDocuments(t *testing.T) {
	body := &content.AboutContent{Paragraph1: "casi 20 años"}
	Render([]*content.Document{doc("about", body)}, nil)
	require.Equal(t, "casi 20 años", body.Paragraph1)
}

func TestRenderResolvesImagesAndOmitsAbsentOnes(t *testing.T) {
	resolve := func(p string) string {
		if p == "" {
			return ""
		}
		return "resolved:" + p
	}
	docs := []*content.Document{
		doc("services", &content.ServicesContent{
			Heading:       "SERVICIOS",
			Services:      []content.ServiceEntry{{ID: "2", Title: "b"}, {ID: "1", Title: "a"}},
			FeaturedImage: "/uploads/x.png",
		}),
		doc("experience", &content.ExperienceContent{Heading: "EXPERIENCIA"}),
	}

	vms := Render(docs, resolve)
	require.Len(t, vms, 2)

	services := vms[0].(ServicesView)
	require.Equal(t, "resolved:/uploads/x.png", services.FeaturedImage)
	// list fields keep stored order, no independent sort key
	require.Equal(t, "2", services.Services[0].ID)
	require.Equal(t, "1", services.Services[1].ID)

	experience := vms[1].(ExperienceView)
	require.Empty(t, experience.FeaturedImage, "absent image stays omitted")
}

func TestRenderSkipsMismatchedBody(t *testing.T) {
	// a known key whose body failed to decode into the typed shape
	vms := Render([]*content.Document{doc("about", map[string]interface{}{"heading": "x"})}, nil)
	require.Empty(t, vms)
}
