// Package utils provides common utility functions for the catalog application.
// It includes string slugification and other shared logic that doesn't fit
// into domain-specific packages.
package utils
