package logger

import (
	"slices"
	"strings"
)

// EntryType is the label of a log entry. The five canonical types are
// governed by the active profile; any other label is a custom type and is
// always written.
type EntryType string

const (
	// TypeError marks an error entry.
	TypeError EntryType = "ERROR"
	// TypeInfo marks an informational entry.
	TypeInfo EntryType = "INFO"
	// TypeWarning marks a warning entry.
	TypeWarning EntryType = "WARNING"
	// TypeCritical marks a critical entry.
	TypeCritical EntryType = "CRITICAL"
	// TypeDebug marks a debug entry.
	TypeDebug EntryType = "DEBUG"
)

// Profile names a set of canonical entry types admitted for writing.
type Profile string

const (
	// ProfileDefault admits ERROR, INFO, WARNING and CRITICAL.
	ProfileDefault Profile = "DEFAULT"
	// ProfileDebug admits every canonical type.
	ProfileDebug Profile = "DEBUG"
	// ProfileProductive admits ERROR, INFO and CRITICAL.
	ProfileProductive Profile = "PRODUCTIVE"
	// ProfileError admits ERROR only.
	ProfileError Profile = "ERROR"
	// ProfileCritical admits CRITICAL only.
	ProfileCritical Profile = "CRITICAL"
	// ProfileNone admits no canonical type. Custom types are still written.
	ProfileNone Profile = "NONE"
)

// TypeSet is an ordered, immutable set of entry types.
type TypeSet []EntryType

// Contains reports whether t is a member of the set.
func (s TypeSet) Contains(t EntryType) bool {
	return slices.Contains(s, t)
}

// profiles is shared read-only by every Logger. Never mutate it.
var profiles = map[Profile]TypeSet{
	ProfileDefault:    {TypeError, TypeInfo, TypeWarning, TypeCritical},
	ProfileDebug:      {TypeError, TypeInfo, TypeWarning, TypeCritical, TypeDebug},
	ProfileProductive: {TypeError, TypeInfo, TypeCritical},
	ProfileError:      {TypeError},
	ProfileCritical:   {TypeCritical},
	ProfileNone:       {},
}

// profileOrder is the listing order used by Profiles.
var profileOrder = []Profile{
	ProfileDefault,
	ProfileDebug,
	ProfileProductive,
	ProfileError,
	ProfileCritical,
	ProfileNone,
}

// Profiles returns the names of the built-in profiles.
func Profiles() []Profile {
	return slices.Clone(profileOrder)
}

// ProfileTypes returns a copy of the types admitted by the built-in profile p.
// The second result is false when p is not a built-in profile.
func ProfileTypes(p Profile) (TypeSet, bool) {
	set, ok := profiles[p]
	if !ok {
		return nil, false
	}
	return slices.Clone(set), true
}

// IsCanonical reports whether t is one of the five built-in entry types.
// The DEBUG profile admits every canonical type, so membership there is the test.
func IsCanonical(t EntryType) bool {
	return profiles[ProfileDebug].Contains(t)
}

// NormalizeEntryType upper-cases s and expands the short forms of the
// canonical types (ERR/E, INF/I, WARN/W, CRIT/C, DBG/D).
func NormalizeEntryType(s string) EntryType {
	switch u := strings.ToUpper(s); u {
	case "ERR", "E":
		return TypeError
	case "INF", "I":
		return TypeInfo
	case "WARN", "W":
		return TypeWarning
	case "CRIT", "C":
		return TypeCritical
	case "DBG", "D":
		return TypeDebug
	default:
		return EntryType(u)
	}
}

// NormalizeProfile upper-cases s and expands the short profile names
// (DEF, DBG, PROD, ERR, CRIT).
func NormalizeProfile(s string) Profile {
	switch u := strings.ToUpper(s); u {
	case "DEF":
		return ProfileDefault
	case "DBG":
		return ProfileDebug
	case "PROD":
		return ProfileProductive
	case "ERR":
		return ProfileError
	case "CRIT":
		return ProfileCritical
	default:
		return Profile(u)
	}
}

// admits decides whether an entry of the normalized type t is written while
// allowed is the active set. Canonical types outside allowed are rejected;
// custom types always pass.
func admits(allowed TypeSet, t EntryType) bool {
	if allowed.Contains(t) {
		return true
	}
	return !IsCanonical(t)
}
