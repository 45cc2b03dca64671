// Package credentials stores the CMS bearer token in a small TOML file and
// exposes it to the cms client as a TokenSource.
package credentials
