// Package manuals builds documentation links for a manufacturer and model.
// Links are derived from known manufacturer support sites and public manual
// indexes; nothing is fetched.
package manuals

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"hvacscan/internal"
)

// MaxResults caps the links returned by Search.
const MaxResults = 5

var ErrMissingInput = errors.New("manufacturer and model are required")

type site struct {
	baseURL     string
	productPath string
	manualsPath string
}

var manufacturerSites = map[string]site{
	"carrier":    {baseURL: "https://www.carrier.com", productPath: "/commercial/hvac-equipment", manualsPath: "/support/manuals"},
	"trane":      {baseURL: "https://www.trane.com", productPath: "/commercial/hvac", manualsPath: "/support/manuals"},
	"york":       {baseURL: "https://www.johnsoncontrols.com", productPath: "/hvac-equipment/york", manualsPath: "/support/manuals"},
	"lennox":     {baseURL: "https://www.lennox.com", productPath: "/commercial", manualsPath: "/support/manuals"},
	"rheem":      {baseURL: "https://www.rheem.com", productPath: "/commercial", manualsPath: "/support/manuals"},
	"goodman":    {baseURL: "https://www.goodmanmfg.com", productPath: "/products", manualsPath: "/support/manuals"},
	"daikin":     {baseURL: "https://www.daikin.com", productPath: "/commercial", manualsPath: "/support/manuals"},
	"mitsubishi": {baseURL: "https://www.mitsubishicomfort.com", productPath: "/commercial", manualsPath: "/support/manuals"},
}

var manualKinds = []string{"installation", "service", "user", "technical", "maintenance", "parts"}

// Search returns up to MaxResults links, deduplicated by URL, with
// manufacturer and manual sites ahead of the rest.
func Search(manufacturer, model string) ([]internal.ManualLink, error) {
	manufacturer = strings.TrimSpace(manufacturer)
	model = strings.TrimSpace(model)
	if manufacturer == "" || model == "" {
		return nil, ErrMissingInput
	}

	var links []internal.ManualLink
	seen := map[string]struct{}{}
	for _, kind := range manualKinds {
		query := manufacturer + " " + model + " " + kind + " manual"
		for _, link := range linksForQuery(query) {
			if _, dup := seen[link.URL]; dup {
				continue
			}
			seen[link.URL] = struct{}{}
			links = append(links, link)
		}
	}

	brand := strings.ToLower(manufacturer)
	sort.SliceStable(links, func(i, j int) bool {
		return official(links[i].URL, brand) && !official(links[j].URL, brand)
	})

	if len(links) > MaxResults {
		links = links[:MaxResults]
	}
	return links, nil
}

func linksForQuery(query string) []internal.ManualLink {
	parts := strings.Fields(strings.ToLower(query))
	brand := parts[0]
	rest := strings.Join(parts[1:], " ")

	var out []internal.ManualLink
	if s, ok := manufacturerSites[brand]; ok {
		name := strings.ToUpper(brand)
		out = append(out,
			internal.ManualLink{
				Title:       name + " " + rest + " - Official Manuals",
				URL:         s.baseURL + s.manualsPath,
				Description: "Official " + name + " manuals and documentation",
				Source:      name + " Official Website",
			},
			internal.ManualLink{
				Title:       name + " " + rest + " - Product Support",
				URL:         s.baseURL + s.productPath,
				Description: "Product information and support for " + name + " equipment",
				Source:      name + " Product Support",
			},
		)
	}

	q := escape(query)
	out = append(out,
		internal.ManualLink{
			Title:       query + " - ManualsLib",
			URL:         "https://www.manualslib.com/search.php?q=" + q,
			Description: "Search for " + query + " manuals on ManualsLib",
			Source:      "ManualsLib",
		},
		internal.ManualLink{
			Title:       query + " - ManualsOnline",
			URL:         "https://www.manualsonline.com/search.html?q=" + q,
			Description: "Search for " + query + " manuals on ManualsOnline",
			Source:      "ManualsOnline",
		},
		internal.ManualLink{
			Title:       query + " - HVAC Manuals",
			URL:         "https://www.hvacmanuals.com/search?q=" + q,
			Description: "Search for " + query + " manuals on HVAC Manuals",
			Source:      "HVAC Manuals",
		},
		internal.ManualLink{
			Title:       query + " - Google Search",
			URL:         "https://www.google.com/search?q=" + escape(query+" manual pdf"),
			Description: "Google search for " + query + " manual PDF",
			Source:      "Google Search",
		},
	)
	return out
}

func official(link, brand string) bool {
	return strings.Contains(link, brand) || strings.Contains(link, "manual") || strings.Contains(link, "service")
}

// escape matches encodeURIComponent: spaces become %20, not +.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
