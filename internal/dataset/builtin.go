package dataset

import (
	"strings"

	"github.com/shanehull/dateaug/internal/types"
)

var builtinParagraphs = []struct {
	text string
	date string
}{
	{
		text: `39.1. The Landlord hereby grants to the Tenant the option to take under lease, subject and subordinate to the Qualified Encumbrances, the space substantially as shown cross-hatched on the diagram attached hereto as Exhibit A-3 and designated as 'D' on the roof of the Building (herein called the "Additional Penthouse Space") subject to all the same terms and conditions of this Lease applicable to the Penthouse Space. The term with respect to the Additional Penthouse Space shall commence, and the Additional Penthouse Space shall be added to the Penthouse Space, on the date which is the earlier to occur of (a) December 1, 1999 and (b) the date upon which the Tenant first occupies the Premises for the conduct of its business, subject to Article Two of this Lease (the "Additional Penthouse Space Term Commencement Date"). The Tenant may exercise the option granted pursuant to this Section 39.1 (if at all) only by notifying the Landlord, in writing, not later than October 1, 1999.`,
		date: "December 1, 1999",
	},
	{
		text: `Tenant shall expand the size of the Premises to include the balance of the space on the sixth (6/th/) floor of the Building as of the date upon which such space is delivered to Tenant by Landlord (the "Expansion Space Commencement Date") pursuant to the terms hereof. The parties estimate that the Expansion Space Commencement Date shall be September 6, 2001 (the "Target Date"). In connection therewith, it is understood and agreed that Landlord may deliver the Expansion Space to Tenant as early as three (3) months prior to the Target Date or as late as six (6) months after the Target Date.`,
		date: "September 6, 2001",
	},
}

// Builtin returns the reference lease paragraphs used when no input file is given.
func Builtin() []types.Paragraph {
	out := make([]types.Paragraph, 0, len(builtinParagraphs))
	for _, b := range builtinParagraphs {
		start := strings.Index(b.text, b.date)
		out = append(out, types.NewParagraph(b.text, start, start+len(b.date)))
	}
	return out
}
