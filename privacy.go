package vault

import "strings"

const defaultPrivacyTemplate = `PRIVACY NOTICE

The files in this archive belong to {name} ({emailAddress}) and were
sealed as part of a digital legacy vault. They are private. If you were
not given a key piece for this vault, close it now and contact the owner.

Owner details for verification:

  Legal name:        {legalName}
  Phone:             {phoneNumber}
  Guidance document: {guidanceDocument}
  Address:           {address}

Opening this vault requires the cooperation of the owner's chosen
recipients. Do not share its contents beyond them.
`

// renderPrivacyNotice substitutes p's fields into tmpl. Absent optional
// fields become empty strings.
func renderPrivacyNotice(tmpl string, p PersonalInfo) string {
	return strings.NewReplacer(
		"{name}", p.Name,
		"{emailAddress}", p.EmailAddress,
		"{legalName}", deref(p.FullLegalName),
		"{phoneNumber}", deref(p.PhoneNumber),
		"{guidanceDocument}", deref(p.GuidanceDocument),
		"{address}", deref(p.Address),
	).Replace(tmpl)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
