package game

import "github.com/scythe504/partydeck-backend/internal"

// Party-safe card sets. Hands are dealt from whiteCards; players may also
// type in their own card, which scores half a point when it wins.
var blackCards = []internal.BlackCard{
	{Text: "The secret to a long life is ____.", Pick: 1},
	{Text: "What did I bring back from vacation? ____.", Pick: 1},
	{Text: "My new startup sells ____.", Pick: 1},
	{Text: "The museum's newest exhibit: ____.", Pick: 1},
	{Text: "Today's weather forecast calls for ____.", Pick: 1},
	{Text: "I can't sleep without ____.", Pick: 1},
	{Text: "The school talent show was won by ____.", Pick: 1},
	{Text: "Scientists have finally discovered ____.", Pick: 1},
	{Text: "My grandma's famous recipe includes ____.", Pick: 1},
	{Text: "The best part of waking up is ____.", Pick: 1},
	{Text: "Next summer's blockbuster movie: ____.", Pick: 1},
	{Text: "My autobiography will be titled ____.", Pick: 1},
	{Text: "The time capsule contained ____.", Pick: 1},
	{Text: "Nothing says romance like ____.", Pick: 1},
	{Text: "The wifi password is ____.", Pick: 1},
	{Text: "I traded my car for ____.", Pick: 1},
	{Text: "The moon landing was sponsored by ____.", Pick: 1},
	{Text: "My superpower would be ____.", Pick: 1},
	{Text: "The last thing I googled was ____.", Pick: 1},
	{Text: "Step 1: ____. Step 2: profit.", Pick: 1},
	{Text: "____ + ____ = the perfect weekend.", Pick: 2},
	{Text: "I combined ____ and ____ and regret nothing.", Pick: 2},
}

var whiteCards = []string{
	"a suspiciously friendly pigeon",
	"an unreasonable amount of glitter",
	"my neighbor's lawn gnome collection",
	"interpretive dance",
	"a lifetime supply of bubble wrap",
	"the world's smallest violin",
	"aggressive yodeling",
	"a motivational poster of a cat",
	"lukewarm soup",
	"an expired coupon",
	"a very confident toddler",
	"left-handed scissors",
	"the last slice of pizza",
	"a haunted roomba",
	"extreme couponing",
	"an encyclopedia of cheese",
	"socks with sandals",
	"a trampoline accident",
	"my browser history",
	"a sentient beach ball",
	"competitive napping",
	"an army of rubber ducks",
	"the mariana trench",
	"grandpa's conspiracy theories",
	"a kazoo solo",
	"mismatched tupperware lids",
	"a dramatic slow clap",
	"the fourth little pig",
	"an overenthusiastic mascot",
	"decaf coffee",
	"a glow-in-the-dark skeleton",
	"eleven secret herbs and spices",
	"a passive-aggressive sticky note",
	"the elevator close-door button",
	"freshly laundered towels",
	"a squirrel with a plan",
	"unsolicited karaoke",
	"the office printer",
	"a wizard on a budget",
	"industrial-strength hairspray",
	"a llama in formal wear",
	"the snooze button",
	"artisanal toast",
	"a surprise pop quiz",
	"the world's okayest dad",
	"a very long staircase",
	"instant regret",
	"a parallel parking attempt",
	"seven hundred browser tabs",
	"a medieval jousting tournament",
	"overripe bananas",
	"the loch ness monster's cousin",
	"a vending machine that gives advice",
	"mysterious leftovers",
	"an extremely local newspaper",
	"the back of the fridge",
	"a heroic hamster",
	"double-dipping",
	"an inflatable tube man",
	"the missing sock dimension",
}

func isKnownWhiteCard(text string) bool {
	for _, c := range whiteCards {
		if c == text {
			return true
		}
	}
	return false
}
