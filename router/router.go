package router

import (
	"net/url"
	"strings"
)

// View halaman tingkat atas yang dikenal aplikasi.
type View int

const (
	ViewLanding View = iota
	ViewCatalog
	ViewInvitation
	ViewAdminCatalog
	ViewGenerator
)

func (v View) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewInvitation:
		return "invitation"
	case ViewAdminCatalog:
		return "admin_catalog"
	case ViewGenerator:
		return "generator"
	default:
		return "landing"
	}
}

// Resolution hasil pemetaan satu path. GuestName dan AdminPrompt hanya
// terisi untuk ViewInvitation.
type Resolution struct {
	View        View
	GuestName   string
	AdminPrompt bool
}

// Router pemetaan murni path→view atas sekumpulan path literal. Tidak ada
// routing berparameter; path yang tidak dikenal jatuh ke landing.
type Router struct {
	invitationPath string
}

func New(invitationPath string) *Router {
	return &Router{invitationPath: strings.TrimSuffix(invitationPath, "/")}
}

// Resolve memetakan path + query mentah ke view tujuan.
func (r *Router) Resolve(path, rawQuery string) Resolution {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	switch path {
	case "/":
		return Resolution{View: ViewLanding}
	case "/undangan":
		return Resolution{View: ViewCatalog}
	case "/undangan/admin":
		return Resolution{View: ViewAdminCatalog}
	case "/generator":
		return Resolution{View: ViewGenerator}
	case r.invitationPath:
		query, err := url.ParseQuery(rawQuery)
		if err != nil {
			query = url.Values{}
		}
		return Resolution{
			View:        ViewInvitation,
			GuestName:   query.Get("to"),
			AdminPrompt: query.Get("admin") == "true",
		}
	default:
		return Resolution{View: ViewLanding}
	}
}
