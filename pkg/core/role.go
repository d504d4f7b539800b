package core

// RoleManifest captures semantic role metadata for an agent variant.
type RoleManifest struct {
	Role           string
	Responsibility string
	Backend        string
	Tools          []string
	Metadata       map[string]string
}

// RoleManifestProvider exposes role metadata for an agent.
type RoleManifestProvider interface {
	RoleManifest() RoleManifest
}
