// Package domain contains the entities shared across the drills service:
// evaluations of the arithmetic drills and the users who request them. The
// types carry no infrastructure concerns.
package domain
