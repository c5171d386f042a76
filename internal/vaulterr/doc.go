// Package vaulterr provides the closed error taxonomy shared by every
// vault component. Every failure path in this module maps to exactly one
// [Kind], so a caller can dispatch on the tag without parsing messages.
package vaulterr
