// Package menu holds the selected menu index shared by the header and pages.
package menu
