package coherence

// BuiltinCatalog returns the standard 18-archetype catalog: six STATIC
// (container) archetypes, six DYNAMIC (engine), and six UPDATER (pivot),
// in that order. Correlate weights and editorial state content originate
// from the CRATE archetype brief; the core treats the content as opaque.
func BuiltinCatalog() *Catalog {
	return NewCatalog(builtinDefinitions...)
}

var builtinDefinitions = []ArchetypeDefinition{
	// STATIC: container, Clarity, stability and safety.
	{
		ID:             "architect",
		Name:           "The Architect",
		Category:       Static,
		Function:       "Builds systems for the future",
		PrimaryAffects: []Affect{Care, Seeking},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Visionary Builder",
				Description: "Creates elegant, lasting systems that serve others and stand the test of time. Balances perfection with pragmatism. Builds cathedrals.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Systems Thinker",
				Description: "Competent organizer who designs structures and processes. Reliable planner. Gets things built.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Perfectionist",
				Description: "Analysis paralysis. Never ships. Rigid controller who mistakes the map for the territory. Builds prisons.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Conscientiousness: 0.8, Openness: 0.8, Honesty: 0.5},
		TarotMapping:     "Emperor (constructive)",
		EnneagramMapping: "1, 5",
	},
	{
		ID:             "guardian",
		Name:           "The Guardian",
		Category:       Static,
		Function:       "Protects boundaries and maintains safety",
		PrimaryAffects: []Affect{Rage, Fear},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Wise Protector",
				Description: "Knows what's worth defending and what to let go. Holds boundaries with strength and discernment. Shields without smothering.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Watchkeeper",
				Description: "Reliable defender of people and principles. Maintains safety. Holds the line when needed.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Paranoid",
				Description: "Sees threats everywhere. Walls everyone out. Controlling. Mistakes vigilance for wisdom. Builds fortresses against imaginary enemies.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Emotionality: 0.8, Conscientiousness: 0.8, Honesty: 0.5, Agreeableness: -0.6},
		TarotMapping:     "Emperor (defensive) + Justice",
		EnneagramMapping: "6, 8",
	},
	{
		ID:             "nurturer",
		Name:           "The Nurturer",
		Category:       Static,
		Function:       "Tends bonds and cares for others",
		PrimaryAffects: []Affect{Care},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Empowering Caregiver",
				Description: "Gives in ways that strengthen others' autonomy. Nurtures growth, not dependency. Loves without losing self.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Warm Presence",
				Description: "Supportive, attentive to others' needs. Creates comfort and belonging. Takes care of people.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Martyr",
				Description: "Codependent. Gives to control or to be needed. Resentful when unreciprocated. Loses self in others' needs.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Emotionality: 0.8, Agreeableness: 0.8, Honesty: 0.5},
		TarotMapping:     "Empress",
		EnneagramMapping: "2",
	},
	{
		ID:             "steward",
		Name:           "The Steward",
		Category:       Static,
		Function:       "Preserves resources and maintains value",
		PrimaryAffects: []Affect{Care, Fear},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Wise Keeper",
				Description: "Ensures sustainability for all. Manages resources with long-term vision. Preserves what matters, releases what doesn't.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Responsible Manager",
				Description: "Reliable custodian of resources, systems, and assets. Maintains what's been built. Keeps the lights on.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Hoarder",
				Description: "Scarcity mindset. Hoards resources. Penny-wise, pound-foolish. Blocks investment out of fear. Confuses frugality with wisdom.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Honesty: 0.8, Conscientiousness: 0.8, Emotionality: 0.5},
		TarotMapping:     "Hierophant (preservation)",
		EnneagramMapping: "6",
	},
	{
		ID:             "teacher",
		Name:           "The Teacher",
		Category:       Static,
		Function:       "Transmits truth and clarifies understanding",
		PrimaryAffects: []Affect{Care, Seeking},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Illuminator",
				Description: "Empowers others to think for themselves. Transmits wisdom that transforms. Makes the complex clear and alive.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Clear Explainer",
				Description: "Patient instructor. Shares knowledge effectively. Helps others understand and grow.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Indoctrinator",
				Description: "Dogmatic. Preachy. 'I know better than you.' Confuses teaching with controlling. Creates followers, not thinkers.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Conscientiousness: 0.8, Openness: 0.8, Honesty: 0.5, Agreeableness: 0.5},
		TarotMapping:     "Hierophant (transmission)",
		EnneagramMapping: "1",
	},
	{
		ID:             "tamer",
		Name:           "The Tamer",
		Category:       Static,
		Function:       "Gentles through presence, calms chaos",
		PrimaryAffects: []Affect{Care, Play},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Peaceful Warrior",
				Description: "Powerful stillness that transforms tension without force. Courage through patience. Tames lions with presence, not dominance.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Calm Presence",
				Description: "De-escalates naturally. Brings groundedness to chaotic situations. Steady in the storm.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Doormat",
				Description: "Passive. Conflict-avoidant at all costs. Peace-at-any-price. Enables dysfunction by refusing to engage. Mistakes numbness for serenity.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Agreeableness: 0.8, Honesty: 0.5, Openness: 0.5, Emotionality: -0.6},
		TarotMapping:     "Strength",
		EnneagramMapping: "9",
	},

	// DYNAMIC: engine, Agency, movement and growth.
	{
		ID:             "pioneer",
		Name:           "The Pioneer",
		Category:       Dynamic,
		Function:       "Explores unknown territory, breaks new ground",
		PrimaryAffects: []Affect{Seeking},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Trailblazer",
				Description: "Courageous explorer who opens frontiers for others to follow. Breaks new ground with purpose. Adventure in service of discovery.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Adventurer",
				Description: "Pushes into new territory. Comfortable with uncertainty. Keeps things moving forward.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Escapist",
				Description: "Can't commit. Always chasing the next horizon. Abandons what's built. Mistakes running from for running toward.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Extraversion: 0.8, Openness: 0.8, Emotionality: -0.6},
		TarotMapping:     "Fool + Chariot",
		EnneagramMapping: "7, 8",
	},
	{
		ID:             "strategist",
		Name:           "The Strategist",
		Category:       Dynamic,
		Function:       "Maps optimal paths and calculates routes",
		PrimaryAffects: []Affect{Seeking},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Master Navigator",
				Description: "Finds the path no one else sees. Brilliant tactical and strategic mind in service of meaningful goals.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Effective Planner",
				Description: "Calculates routes. Weighs options. Finds efficient paths forward. Gets from A to B.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Manipulator",
				Description: "Over-plans, never acts. Uses strategy as defense against uncertainty. Chess-player who treats people as pieces.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Conscientiousness: 0.8, Openness: 0.8, Extraversion: 0.5},
		TarotMapping:     "Magician (planning)",
		EnneagramMapping: "3, 5",
	},
	{
		ID:             "activist",
		Name:           "The Activist",
		Category:       Dynamic,
		Function:       "Removes obstacles and fights for change",
		PrimaryAffects: []Affect{Rage},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Righteous Warrior",
				Description: "Channels anger into justice. Fights the right battles for the right reasons. Removes real obstacles. Changes what needs changing.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Determined Fighter",
				Description: "Pushes through resistance. Advocates for what matters. Doesn't back down easily.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Destroyer",
				Description: "Angry at everything. Burns bridges indiscriminately. Can't distinguish worthy battles.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Honesty: 0.8, Conscientiousness: 0.8, Openness: 0.5, Agreeableness: -0.6},
		TarotMapping:     "Chariot (combat)",
		EnneagramMapping: "8, 1",
	},
	{
		ID:             "networker",
		Name:           "The Networker",
		Category:       Dynamic,
		Function:       "Weaves connections and creates opportunity",
		PrimaryAffects: []Affect{Care, Seeking},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Generous Connector",
				Description: "Creates value by bringing the right people together. Builds bridges that benefit everyone. Weaves communities.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Social Weaver",
				Description: "Naturally connects people and opportunities. Builds and maintains relationships. Knows who to call.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Collector",
				Description: "Transactional. Collects people as assets. Superficial relationships. Can't go deep. Confuses contacts for connections.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Extraversion: 0.8, Agreeableness: 0.8, Openness: 0.8},
		TarotMapping:     "Lovers (social aspect)",
		EnneagramMapping: "2, 7",
	},
	{
		ID:             "trickster",
		Name:           "The Trickster",
		Category:       Dynamic,
		Function:       "Disrupts stagnation and injects necessary chaos",
		PrimaryAffects: []Affect{Seeking, Play},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Sacred Fool",
				Description: "Speaks truth through humor. Breaks necessary rules for liberation. Disrupts stagnation in service of growth. The holy jester.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Playful Disruptor",
				Description: "Questions assumptions. Pokes holes in certainty. Keeps things from getting too rigid. Makes people laugh.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Chaos Agent",
				Description: "Destroys without purpose. Cruel humor. Can't be serious when it matters. Mistakes destruction for freedom.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Openness: 0.8, Extraversion: 0.5, Honesty: -0.6, Conscientiousness: -0.6},
		TarotMapping:     "Wheel of Fortune + Fool (shadow)",
		EnneagramMapping: "7",
	},
	{
		ID:             "lover",
		Name:           "The Lover",
		Category:       Dynamic,
		Function:       "Bonds through desire, creates union",
		PrimaryAffects: []Affect{Care, Lust},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Sacred Partner",
				Description: "Creates profound union that transforms both parties. Loves without losing self. Bonding as mutual awakening.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Passionate Connector",
				Description: "Builds intimacy. Draws people close. Creates warmth and attraction. Bonds deeply.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Obsessive",
				Description: "Possessive. Loses self in other. Seductive manipulation. Confuses intensity for intimacy. Love as consumption.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Emotionality: 0.8, Extraversion: 0.8, Agreeableness: 0.8, Openness: 0.8},
		TarotMapping:     "Lovers",
		EnneagramMapping: "2, 4, 9",
	},

	// UPDATER: pivot, Trust, transformation and resilience.
	{
		ID:             "alchemist",
		Name:           "The Alchemist",
		Category:       Updater,
		Function:       "Transmutes loss into new form",
		PrimaryAffects: []Affect{Seeking, Panic},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Transmuter",
				Description: "Transforms suffering into wisdom and growth for self and others. Finds gold in the ashes. The wound becomes the gift.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Processor",
				Description: "Metabolizes loss and difficulty. Finds meaning in pain. Moves through rather than around.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Wound Dweller",
				Description: "Wallows in pain. Addicted to crisis. Manufactures suffering to feel alive. Identity fused with trauma.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Emotionality: 0.8, Openness: 0.8, Agreeableness: 0.5},
		TarotMapping:     "Death",
		EnneagramMapping: "4",
	},
	{
		ID:             "mystic",
		Name:           "The Mystic",
		Category:       Updater,
		Function:       "Sees hidden patterns and holds paradox",
		PrimaryAffects: []Affect{Seeking},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Seer",
				Description: "Sees through to truth and brings back insight that transforms. Holds paradox without collapse. Pattern recognition in service of wisdom.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Pattern-Seer",
				Description: "Perceives what others miss. Intuitive. Comfortable with mystery and ambiguity. Sees the code beneath.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Lost One",
				Description: "Disconnected from reality. Cryptic. Paranoid pattern-matching. Sees patterns that aren't there. Wisdom as escape.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Openness: 0.8, Conscientiousness: 0.5, Extraversion: -0.6},
		TarotMapping:     "High Priestess + Moon",
		EnneagramMapping: "5, 4",
	},
	{
		ID:             "sage",
		Name:           "The Sage",
		Category:       Updater,
		Function:       "Holds the long view and accepts endings",
		PrimaryAffects: nil, // equanimity: no dominant affect
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Wise Elder",
				Description: "Helps others accept what is and see what truly matters. Holds perspective that transcends urgency. Wisdom in service of life.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Long-View Thinker",
				Description: "Patient perspective. Sees beyond the immediate. Knows what passes and what endures.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Detached One",
				Description: "Uses wisdom as superiority. Checked out of life. Nihilistic. Mistakes withdrawal for transcendence.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Honesty: 0.8, Openness: 0.8, Conscientiousness: 0.5, Emotionality: -0.6},
		TarotMapping:     "Hermit",
		EnneagramMapping: "5, 9",
	},
	{
		ID:             "healer",
		Name:           "The Healer",
		Category:       Updater,
		Function:       "Restores wholeness after crisis",
		PrimaryAffects: []Affect{Care},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Restorer",
				Description: "Facilitates genuine healing through presence and skill. Restores wholeness without creating dependency. The wounded healer.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Tender",
				Description: "Tends wounds physical, emotional, relational. Supports recovery. Creates conditions for healing.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Fixer",
				Description: "Fixes people who don't want fixing. Needs others broken to feel useful. Creates dependency. Healing as control.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Emotionality: 0.8, Agreeableness: 0.8, Openness: 0.8},
		TarotMapping:     "Star",
		EnneagramMapping: "2, 9",
	},
	{
		ID:             "artist",
		Name:           "The Artist",
		Category:       Updater,
		Function:       "Expresses from depth, creates from wound",
		PrimaryAffects: []Affect{Care, Panic},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Authentic Creator",
				Description: "Transforms inner experience into work that awakens others. Creates truth, not performance. Art as transmission.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Expressive One",
				Description: "Makes meaning through form. Channels feeling into creation. Gives shape to the ineffable.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Performer",
				Description: "Self-indulgent. Creates for attention, not truth. Confuses drama for depth. Navel-gazing as art.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Emotionality: 0.8, Openness: 0.8, Conscientiousness: -0.6},
		TarotMapping:     "None (pure creative force)",
		EnneagramMapping: "4",
	},
	{
		ID:             "shapeshifter",
		Name:           "The Shapeshifter",
		Category:       Updater,
		Function:       "Transforms self to adapt to any situation",
		PrimaryAffects: []Affect{Seeking, Play},
		States: map[CoherenceState]StateContent{
			StateHigh: {
				Label:       "The Fluid Master",
				Description: "Becomes what any situation needs without losing core. Adaptive genius. Water that fits any container yet remains water.",
				Guidance:    "TBD",
			},
			StateBase: {
				Label:       "The Adapter",
				Description: "Flexible responder. Adjusts to context. Survives and thrives through change. Reads the room.",
				Guidance:    "TBD",
			},
			StateLow: {
				Label:       "The Chameleon",
				Description: "No core self. Changes to please. Manipulates through mirroring. Can't be pinned down because there's nothing there.",
				Guidance:    "Check your blindspots.",
			},
		},
		Correlates:       map[Trait]float64{Openness: 0.8, Extraversion: 0.5, Agreeableness: 0.5, Conscientiousness: -0.6},
		TarotMapping:     "Wheel of Fortune (adaptation)",
		EnneagramMapping: "3, 9",
	},
}
