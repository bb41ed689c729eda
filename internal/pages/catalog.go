// Package pages holds the catalog of back-office page templates.
//
// Each page is a React component stub with placeholder text. The catalog is
// fixed at build time: page text is embedded in the binary and never varies
// between runs.
package pages

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// ErrUnknownPage is returned when a page name is not in the catalog.
var ErrUnknownPage = errors.New("unknown page")

// Page is a single page template.
type Page struct {
	// Name is the component name, also used to derive the output file name.
	Name string `json:"name"`
	// Title is the heading shown at the top of the page.
	Title string `json:"title"`
	// Route is the path the page is mounted on in the application router.
	Route string `json:"route"`
	// Content is the literal template text.
	Content []byte `json:"-"`
}

// pageInfo describes a page before its content is loaded.
type pageInfo struct {
	name  string
	title string
	route string
}

// pageInfos lists the pages in generation order.
var pageInfos = []pageInfo{
	{"Dashboard", "Dashboard", "/dashboard"},
	{"DailyTours", "Daily Tours", "/income/daily-tours"},
	{"MultiDayTours", "Multi-day Tours", "/income/multi-day-tours"},
	{"RentingServices", "Renting Services", "/income/renting-services"},
	{"CustomTours", "Custom Made Tours", "/income/custom-tours"},
	{"OtherIncome", "Other Income", "/income/other"},
	{"Costs", "Costs & Expenses", "/costs"},
	{"Assets", "Assets", "/assets"},
	{"Clients", "Clients", "/clients"},
	{"Invoices", "Invoices", "/invoices"},
	{"Reports", "Reports", "/reports"},
	{"Settings", "Settings", "/settings"},
}

// catalog is the loaded page set. Built once at init.
var catalog = mustBuildCatalog(templateFS, pageInfos)

// buildCatalog loads the content of every page from fsys.
// Page names must be unique and every page must have a template file.
func buildCatalog(fsys fs.FS, infos []pageInfo) ([]Page, error) {
	seen := make(map[string]bool, len(infos))
	result := make([]Page, 0, len(infos))

	for _, info := range infos {
		if info.name == "" {
			return nil, fmt.Errorf("page name cannot be empty")
		}
		if seen[info.name] {
			return nil, fmt.Errorf("duplicate page name: %s", info.name)
		}
		seen[info.name] = true

		content, err := fs.ReadFile(fsys, path.Join(templateDir, info.name+templateExt))
		if err != nil {
			return nil, fmt.Errorf("failed to load template for %s: %w", info.name, err)
		}

		result = append(result, Page{
			Name:    info.name,
			Title:   info.title,
			Route:   info.route,
			Content: content,
		})
	}

	return result, nil
}

func mustBuildCatalog(fsys fs.FS, infos []pageInfo) []Page {
	pages, err := buildCatalog(fsys, infos)
	if err != nil {
		panic("pages: " + err.Error())
	}
	return pages
}

// All returns every page in generation order.
// The returned slice is a copy; page content must not be modified.
func All() []Page {
	result := make([]Page, len(catalog))
	copy(result, catalog)
	return result
}

// Names returns the page names in generation order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the page with the given name. Names are case-sensitive.
func Lookup(name string) (Page, error) {
	for _, p := range catalog {
		if p.Name == name {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %s", ErrUnknownPage, name)
}

// Select returns the named pages in catalog order, ignoring duplicates.
// An empty selection returns all pages.
func Select(names []string) ([]Page, error) {
	if len(names) == 0 {
		return All(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := Lookup(name); err != nil {
			return nil, err
		}
		wanted[name] = true
	}

	result := make([]Page, 0, len(wanted))
	for _, p := range catalog {
		if wanted[p.Name] {
			result = append(result, p)
		}
	}
	return result, nil
}
