package fouryousee

import (
	"fmt"
	"sort"
	"strings"
)

// Resource identifies a 4YouSee API collection by its path
type Resource string

const (
	ResourceUsers           Resource = "users"
	ResourceUserGroups      Resource = "users/groups"
	ResourceUploads         Resource = "uploads"
	ResourceMedias          Resource = "medias"
	ResourceMediaCategories Resource = "medias/categories"
	ResourcePlayers         Resource = "players"
	ResourcePlaylists       Resource = "playlists"
	ResourceTemplates       Resource = "templates"
	ResourceNewsources      Resource = "newsources"
	ResourceNews            Resource = "news"
	ResourceReports         Resource = "reports"
)

// idLookup tells how a resource answers a ByID query
type idLookup int

const (
	// lookupNone rejects ByID
	lookupNone idLookup = iota
	// lookupServer requests path/id; the server reports missing records
	lookupServer
	// lookupLocal lists everything and keeps the records with that id;
	// a miss is an empty result
	lookupLocal
	// lookupParam forwards the id as an ordinary filter parameter
	lookupParam
)

// policy is the dispatch behaviour of one resource
type policy struct {
	label  string
	filter bool
	byID   idLookup
	// createPath is the endpoint new records are posted to
	createPath string
}

var policies = map[Resource]policy{
	ResourceUsers:           {label: "User", byID: lookupNone},
	ResourceUserGroups:      {label: "User group", byID: lookupNone},
	ResourceUploads:         {label: "Upload", byID: lookupLocal, createPath: "uploads"},
	ResourceMedias:          {label: "Media", filter: true, byID: lookupServer, createPath: "medias"},
	ResourceMediaCategories: {label: "Media category", byID: lookupServer, createPath: "medias/categories/"},
	ResourcePlayers:         {label: "Player", byID: lookupServer, createPath: "players/"},
	ResourcePlaylists:       {label: "Playlist", byID: lookupServer, createPath: "playlists/"},
	ResourceTemplates:       {label: "Template", byID: lookupLocal},
	ResourceNewsources:      {label: "News source", filter: true, byID: lookupParam},
	ResourceNews:            {label: "News", filter: true, byID: lookupServer},
	ResourceReports:         {label: "Report", byID: lookupServer, createPath: "reports/"},
}

// aliases maps the names accepted on the command line to resources
var aliases = map[string]Resource{
	"user":             ResourceUsers,
	"groups":           ResourceUserGroups,
	"user-groups":      ResourceUserGroups,
	"upload":           ResourceUploads,
	"media":            ResourceMedias,
	"categories":       ResourceMediaCategories,
	"category":         ResourceMediaCategories,
	"media-categories": ResourceMediaCategories,
	"player":           ResourcePlayers,
	"playlist":         ResourcePlaylists,
	"template":         ResourceTemplates,
	"news-sources":     ResourceNewsources,
	"report":           ResourceReports,
}

// String returns the resource path
func (r Resource) String() string {
	return string(r)
}

// Label returns the human name used in error messages
func (r Resource) Label() string {
	if p, ok := policies[r]; ok {
		return p.label
	}
	return string(r)
}

// ParseResource resolves a resource path or one of its aliases
func ParseResource(name string) (Resource, error) {
	name = strings.ToLower(strings.Trim(strings.TrimSpace(name), "/"))
	if _, ok := policies[Resource(name)]; ok {
		return Resource(name), nil
	}
	if res, ok := aliases[name]; ok {
		return res, nil
	}
	return "", fmt.Errorf("unknown resource %q (known: %s)", name, strings.Join(resourceNames(), ", "))
}

func resourceNames() []string {
	names := make([]string, 0, len(policies))
	for res := range policies {
		names = append(names, string(res))
	}
	sort.Strings(names)
	return names
}
