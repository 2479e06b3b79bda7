package game

import "strings"

type Character struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Characters is the deduction-game roster. Both players draw their secret
// from this list and guesses are matched against it.
var Characters = []Character{
	{ID: "al", Name: "Al", Image: "/characters/Al.png"},
	{ID: "amy", Name: "Amy", Image: "/characters/Amy.png"},
	{ID: "ben", Name: "Ben", Image: "/characters/Ben.png"},
	{ID: "carmen", Name: "Carmen", Image: "/characters/Carmen.png"},
	{ID: "daniel", Name: "Daniel", Image: "/characters/Daniel.png"},
	{ID: "david", Name: "David", Image: "/characters/David.png"},
	{ID: "emma", Name: "Emma", Image: "/characters/Emma.png"},
	{ID: "eric", Name: "Eric", Image: "/characters/Eric.png"},
	{ID: "farah", Name: "Farah", Image: "/characters/Farah.png"},
	{ID: "gabe", Name: "Gabe", Image: "/characters/Gabe.png"},
	{ID: "joe", Name: "Joe", Image: "/characters/Joe.png"},
	{ID: "jordan", Name: "Jordan", Image: "/characters/Jordan.png"},
	{ID: "katie", Name: "Katie", Image: "/characters/Katie.png"},
	{ID: "laura", Name: "Laura", Image: "/characters/Laura.png"},
	{ID: "leo", Name: "Leo", Image: "/characters/Leo.png"},
	{ID: "lily", Name: "Lily", Image: "/characters/Lily.png"},
	{ID: "liz", Name: "Liz", Image: "/characters/Liz.png"},
	{ID: "mia", Name: "Mia", Image: "/characters/Mia.png"},
	{ID: "mike", Name: "Mike", Image: "/characters/Mike.png"},
	{ID: "nick", Name: "Nick", Image: "/characters/Nick.png"},
	{ID: "olivia", Name: "Olivia", Image: "/characters/Olivia.png"},
	{ID: "rachel", Name: "Rachel", Image: "/characters/Rachel.png"},
	{ID: "sam", Name: "Sam", Image: "/characters/Sam.png"},
	{ID: "sophia", Name: "Sophia", Image: "/characters/Sophia.png"},
}

// FindCharacter resolves a guess by id or display name, case-insensitive.
func FindCharacter(input string) (Character, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	for _, c := range Characters {
		if strings.ToLower(c.ID) == needle || strings.ToLower(c.Name) == needle {
			return c, true
		}
	}
	return Character{}, false
}
