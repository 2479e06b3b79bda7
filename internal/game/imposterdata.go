package game

type wordPair struct {
	Secret string
	Hints  []string
}

// Each secret carries ten candidate hints; the imposter gets one at random.
var imposterWords = []wordPair{
	{Secret: "McDonald's", Hints: []string{"Golden Arches", "Fast Food", "Burger Joint", "Drive-Thru", "Happy Meal Place", "Ronald's Place", "Big Mac Home", "Fry Spot", "Quarter Pounder", "McFlurry"}},
	{Secret: "Starbucks", Hints: []string{"Coffee Chain", "Green Logo", "Frappuccino", "Mermaid", "Latte Art", "Pumpkin Spice", "Venti Size", "Barista", "Pike Place", "Caramel Macchiato"}},
	{Secret: "Taco Bell", Hints: []string{"Mexican Fast Food", "Crunch Wrap", "Baja Blast", "Fourth Meal", "Taco Chain", "Gordita", "Chalupa", "Live Mas", "Cheesy Gordita", "Nacho Fries"}},
	{Secret: "Disneyland", Hints: []string{"Magic Kingdom", "Sleeping Beauty Castle", "California Park", "Happiest Place", "Mickey Mouse", "Main Street USA", "Fantasyland", "Walt Disney", "Fireworks", "Space Mountain"}},
	{Secret: "Eiffel Tower", Hints: []string{"Paris", "Iron Lady", "France Landmark", "Gustave Eiffel", "Light Show", "Champ de Mars", "Romantic Spot", "Steel Structure", "Observation Deck", "World Fair"}},
	{Secret: "Statue of Liberty", Hints: []string{"New York", "Lady Liberty", "Ellis Island", "France Gift", "Torch", "Green Copper", "Crown", "Freedom Symbol", "Harbor", "Emma Lazarus"}},
	{Secret: "Grand Canyon", Hints: []string{"Arizona", "National Park", "Colorado River", "Red Rocks", "Mile Deep", "Hiking", "South Rim", "Natural Wonder", "Desert", "Geological Wonder"}},
	{Secret: "Times Square", Hints: []string{"New York City", "New Years Eve", "Ball Drop", "Broadway", "Bright Lights", "Billboards", "Manhattan", "Crossroads", "Tourist Spot", "Neon Signs"}},
	{Secret: "IKEA", Hints: []string{"Swedish Furniture", "Assembly Required", "Meatballs", "Flat Pack", "Blue Yellow", "Showroom", "Billy Bookcase", "Scandinavian", "Warehouse", "Allen Key"}},
	{Secret: "Amazon", Hints: []string{"Online Shopping", "Jeff Bezos", "Prime", "Delivery", "Smile Logo", "Echo Alexa", "AWS", "Seattle", "Boxes", "Two Day Shipping"}},
	{Secret: "Elephant", Hints: []string{"Safari Animal", "Trunk", "Big Ears", "African Asian", "Ivory Tusks", "Gray Giant", "Peanuts", "Memory", "Largest Land", "Pachyderm"}},
	{Secret: "Penguin", Hints: []string{"Flightless Bird", "Tuxedo", "Antarctica", "Waddle", "Ice Bird", "Colony", "March of", "Emperor", "Fish Eater", "Cold Weather"}},
	{Secret: "Octopus", Hints: []string{"Eight Arms", "Tentacles", "Ink", "Ocean", "Intelligence", "Camouflage", "Suckers", "Mollusk", "Escape Artist", "Cephalopod"}},
	{Secret: "Dragon", Hints: []string{"Fire Breather", "Wings", "Mythical Beast", "Scales", "Fantasy", "Medieval", "Flying Reptile", "Treasure Hoard", "Knight Foe", "Legendary"}},
	{Secret: "Mario", Hints: []string{"Nintendo", "Plumber", "Red Hat", "Mushroom Kingdom", "Princess Peach", "Bowser", "Luigi Brother", "Jumping", "Coins", "Super Star"}},
	{Secret: "Pikachu", Hints: []string{"Pokemon", "Electric Type", "Yellow Mouse", "Ash Ketchum", "Thunder Bolt", "Pika Pika", "Cheeks", "Starter", "Cute Monster", "Japanese Game"}},
	{Secret: "Minecraft", Hints: []string{"Block Game", "Creeper", "Steve", "Survival", "Crafting", "Diamonds", "Mojang", "Sandbox", "Enderman", "Building"}},
	{Secret: "Among Us", Hints: []string{"Imposter Game", "Sus", "Crewmate", "Emergency Meeting", "Tasks", "Vent", "Spaceship", "Social Deduction", "Vote Out", "Beans"}},
	{Secret: "Pizza", Hints: []string{"Italian Food", "Cheese Pepperoni", "Delivery", "Slices", "Crust", "Toppings", "Round Food", "Oven Baked", "Party Food", "Pie"}},
	{Secret: "Sushi", Hints: []string{"Japanese Food", "Raw Fish", "Rice Roll", "Seaweed", "Wasabi", "Chopsticks", "Sake Pair", "Sashimi", "California Roll", "Soy Sauce"}},
	{Secret: "Ice Cream", Hints: []string{"Frozen Dessert", "Cone", "Scoop", "Vanilla Chocolate", "Summer Treat", "Sprinkles", "Brain Freeze", "Sundae", "Cold Sweet", "Dairy"}},
	{Secret: "Smartphone", Hints: []string{"Mobile Device", "iPhone Android", "Touchscreen", "Apps", "Pocket Computer", "Texting", "Camera", "Internet", "Battery Life", "Always Connected"}},
	{Secret: "Bicycle", Hints: []string{"Two Wheels", "Pedaling", "Handlebars", "Cycling", "Exercise", "Chain Gears", "Helmet Needed", "Eco Transport", "Bell", "Balance"}},
	{Secret: "Airplane", Hints: []string{"Flying Machine", "Wings", "Airport", "Pilot", "Travel", "Boeing Airbus", "Turbulence", "First Class", "Takeoff Landing", "Sky Travel"}},
	{Secret: "Submarine", Hints: []string{"Underwater Vessel", "Navy", "Periscope", "Yellow Beatles", "Deep Sea", "Torpedo", "U-Boat", "Diving", "Ocean Depths", "Pressure"}},
	{Secret: "Basketball", Hints: []string{"Orange Ball", "Hoop Net", "NBA", "Dribbling", "Court", "Three Pointer", "Slam Dunk", "Michael Jordan", "Shooting", "Team Sport"}},
	{Secret: "Guitar", Hints: []string{"Six Strings", "Frets", "Strumming", "Acoustic Electric", "Rock Music", "Chords", "Pick", "Fender Gibson", "Band Instrument", "Solo"}},
	{Secret: "Roller Coaster", Hints: []string{"Theme Park", "Thrill Ride", "Loops", "Screaming", "Adrenaline", "Fast Drop", "Tracks", "Queue Line", "Stomach Drop", "Fun Fear"}},
	{Secret: "Rainbow", Hints: []string{"After Rain", "Seven Colors", "Pot of Gold", "Arc Sky", "Prism", "Colorful", "Leprechaun", "Weather Phenomenon", "Spectrum", "Hope Symbol"}},
	{Secret: "Volcano", Hints: []string{"Erupting", "Lava", "Magma", "Mountain", "Hawaii", "Ash Cloud", "Ring of Fire", "Dormant Active", "Crater", "Pompeii"}},
	{Secret: "Snowman", Hints: []string{"Winter", "Carrot Nose", "Coal Eyes", "Three Balls", "Frosty", "Scarf Hat", "Melting", "Snow Sculpture", "Stick Arms", "Holiday Decor"}},
	{Secret: "Fireworks", Hints: []string{"Explosions", "Fourth of July", "New Year", "Colorful Sky", "Loud Booms", "Celebration", "Sparkles", "Night Show", "Ooh Aah", "Finale"}},
	{Secret: "Lego", Hints: []string{"Building Blocks", "Plastic Bricks", "Danish Toy", "Stepping Pain", "Creative", "Sets", "Minifigures", "Colorful", "Instructions", "Snap Together"}},
	{Secret: "Rubik's Cube", Hints: []string{"Puzzle", "Six Colors", "Twisting", "Brain Teaser", "Speed Solving", "Frustrating", "1980s", "Hungarian", "Algorithm", "Cube"}},
	{Secret: "Monopoly", Hints: []string{"Board Game", "Real Estate", "Passing Go", "Jail", "Hotels Houses", "Dice", "Money", "Bankrupt", "Long Game", "Atlantic City"}},
	{Secret: "Rocket Ship", Hints: []string{"Space Travel", "Launch", "NASA SpaceX", "Astronaut", "Blast Off", "Countdown", "Fuel", "Moon Mars", "Thrust", "Space Race"}},
	{Secret: "Black Hole", Hints: []string{"Space", "Gravity", "Event Horizon", "Light Trap", "Mysterious", "Cosmic", "Interstellar", "Singularity", "Hawking", "Dense"}},
	{Secret: "Moon", Hints: []string{"Night Sky", "Lunar", "Phases", "Tide Cause", "Apollo", "Crater", "Full Moon", "Werewolf", "Orbit", "One Small Step"}},
	{Secret: "Robot", Hints: []string{"Machine", "AI", "Beep Boop", "Mechanical", "Automation", "Metal", "Future", "Programming", "Terminator", "Helper"}},
	{Secret: "Waterfall", Hints: []string{"Falling Water", "Nature", "Cliff", "Rainbow Mist", "Niagara", "Hiking", "Loud Roar", "Scenic", "Pool Below", "Cascade"}},
}

// randomWordPair avoids secrets already played this party. Once the list is
// exhausted repeats are allowed again.
func randomWordPair(rng Rand, usedIndices []int) (secret, hint string, index int) {
	used := make(map[int]bool, len(usedIndices))
	for _, i := range usedIndices {
		used[i] = true
	}

	available := make([]int, 0, len(imposterWords))
	for i := range imposterWords {
		if !used[i] {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		for i := range imposterWords {
			available = append(available, i)
		}
	}

	index = available[rng.Intn(len(available))]
	w := imposterWords[index]
	hint = w.Hints[rng.Intn(len(w.Hints))]
	return w.Secret, hint, index
}
