package assignment

import (
	"github.com/huntlabs/treasurehunt/internal/models"
)

// RealDestination is the single genuine next-round target every real link
// points at.
const RealDestination = "/treasureHunt/round2"

// RealDestinationPrefix is the lenient prefix accepted for round-two secret
// paths submitted by clients. Minor client-side formatting drift is tolerated
// on purpose.
const RealDestinationPrefix = "/roundtwo-"

// locations is the fixed catalogue of link slots across the public pages.
// Order matters: the assignment math indexes into this slice and the order
// must never change once a game has started.
var locations = []models.LinkLocation{
	{Page: "about", Section: "header", Position: "right"},
	{Page: "about", Section: "mission", Position: "bottom"},
	{Page: "about", Section: "team", Position: "middle"},
	{Page: "about", Section: "footer", Position: "left"},
	{Page: "contact", Section: "header", Position: "top"},
	{Page: "contact", Section: "form", Position: "right"},
	{Page: "contact", Section: "map", Position: "bottom"},
	{Page: "contact", Section: "footer", Position: "middle"},
	{Page: "courses", Section: "header", Position: "left"},
	{Page: "courses", Section: "list", Position: "top"},
	{Page: "courses", Section: "details", Position: "right"},
	{Page: "courses", Section: "footer", Position: "bottom"},
	{Page: "pricing", Section: "header", Position: "middle"},
	{Page: "pricing", Section: "plans", Position: "left"},
	{Page: "pricing", Section: "faq", Position: "top"},
	{Page: "pricing", Section: "footer", Position: "right"},
	{Page: "journal", Section: "header", Position: "bottom"},
	{Page: "journal", Section: "articles", Position: "middle"},
	{Page: "journal", Section: "sidebar", Position: "left"},
	{Page: "journal", Section: "footer", Position: "top"},
}

// decoyDestinations is the fixed pool of destinations handed to visible
// non-genuine links.
var decoyDestinations = []string{
	"/decoy/page1",
	"/decoy/page2",
	"/decoy/page3",
	"/decoy/page4",
	"/decoy/page5",
	"/decoy/clue1",
	"/decoy/clue2",
	"/decoy/clue3",
	"/decoy/hint1",
	"/decoy/hint2",
}

// roundTwoTokens are the secret paths hidden inside round two. Submitting any
// of these counts as reaching the genuine link.
var roundTwoTokens = []string{
	"/roundtwo-a1b2c3d4e5f6789",
	"/roundtwo-ff774ffhhi287",
	"/roundtwo-x9y8z7w6v5u4321",
	"/roundtwo-mn34op56qr78st90",
	"/roundtwo-abcd1234efgh5678",
	"/roundtwo-xyz987uvw654rst3",
	"/roundtwo-qwerty123uiop456",
	"/roundtwo-lmn678opq234rst9",
	"/roundtwo-98zyx765wvu43210",
	"/roundtwo-ghijklm456nop789",
	"/roundtwo-pqrstu123vwxyz45",
	"/roundtwo-abc987def654ghi32",
	"/roundtwo-klmno123pqrst456",
	"/roundtwo-uvwxyz9876543210",
	"/roundtwo-qwert678yuiop234",
}

// Locations returns a copy of the full location catalogue.
func Locations() []models.LinkLocation {
	out := make([]models.LinkLocation, len(locations))
	copy(out, locations)
	return out
}

// RoundTwoTokens returns a copy of the secret round-two paths.
func RoundTwoTokens() []string {
	out := make([]string, len(roundTwoTokens))
	copy(out, roundTwoTokens)
	return out
}
