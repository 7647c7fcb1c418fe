package main

// The three card pools for the interview game. Decks are rebuilt from
// these at the start of every round and reshuffled whenever one runs
// dry mid-deal.

var jobPool = []string{
	"Firefighter",
	"Author",
	"Chef",
	"Teacher",
	"Game Designer",
	"Comedian",
	"Pilot",
	"Barista",
	"Astronaut",
	"Zookeeper",
	"Professional Gamer",
	"AI Ethics Officer",
	"Cat Cafe Manager",
	"Middle School Principal",
	"Lifeguard",
	"Wedding Planner",
	"Food Truck Chef",
	"Fortune Cookie Writer",
	"Doctor",
	"Baker",
	"Pastry Chef",
	"Rat Exterminator",
	"Plumber",
	"The President",
	"Children's Book Author",
	"Therapist",
	"Molecular Biologist",
	"Cruise Ship Magician",
	"Weather Forecaster",
	"Discord Mod",
}

var traitPool = []string{
	"Blue",
	"5'9",
	"Reads 12 words per minute",
	"Redditor",
	"Pirate",
	"Cross-eyed",
	"Really good at Mario Kart",
	"Talks about their Funko Pop collection",
	"Won their 8th grade spelling bee",
	"Helped their friend move one time",
	"Collects rocks",
	"Fakes a deep voice",
	"Has a shiny bald head",
	"Excel & Word certified",
	"Has an associate's degree",
	"Licensed to chill",
	"Good at math",
	"Extremely ripped",
	"6'3",
	"Extremely politically correct",
	"Fastest kid in their 5th grade class",
	"Majored in psychology",
	"4.0 GPA in middle school",
	"Really loves Sonic the Hedgehog",
	"Blunt",
	"Always holding in a sneeze",
	"Extremely strong grip",
	"Brings snacks",
	"Certified plant whisperer",
	"Gives immaculate high-fives",
	"Parallel parks like a video game speedrun",
	"Can assemble IKEA furniture without a single spare piece",
	"Makes playlists for every mood",
	"Is flexible",
	"Can only speak in questions",
	"Is 4 years old",
	"Plays League competitively",
	"Really good at Go Fish",
	"Knows how to change oil in a car",
	"Unclogs pipes",
	"Ran a loom bracelet business in elementary school",
	"Has never lost a staring contest",
	"Owns 14 ferrets",
	"Quotes movies mid-sentence",
	"Laughs at their own jokes before the punchline",
	"Cried at a car commercial once",
	"Alphabetizes their spice rack",
	"Whittles tiny ducks when nervous",
	"Claims to have met Shrek",
	"Practices acceptance speeches in the shower",
	"Can whistle two notes at once",
	"Keeps a backup sandwich on their person",
	"Former mall Santa",
	"Undefeated at thumb wars",
	"Narrates their own life quietly",
	"Hums elevator music in elevators",
	"Peaked in preschool",
	"Double-knots everything",
	"Memorized the first 100 digits of pi, forgot the first 10",
	"Writes thank-you notes to vending machines",
	"Can name every bird, incorrectly",
	"Carries a spare kazoo",
	"Only walks on the left side of stairs",
	"Sleeps with socks on, proudly",
	"Has strong opinions about fonts",
	"Does the robot at weddings uninvited",
	"Counts steps out loud",
	"Refuses to use umbrellas on principle",
	"Knows all the words to one sea shanty",
	"Collects expired coupons",
	"Has a tattoo of a QR code that no longer resolves",
	"Claps when the plane lands",
	"Speed-reads cereal boxes",
	"Never skips the credits",
	"Microwaves ice cream slightly",
	"Salutes every dog they pass",
	"Keeps a diary for their houseplants",
	"Once returned a library book on time",
	"Can fold a fitted sheet",
	"Thinks mayonnaise is spicy",
}

var twistPool = []string{
	"Emotionally unavailable",
	"Majored in business",
	"Secretly just farted right now",
	"Has night vision",
	"Can only count up to 10",
	"Traumatic childhood",
	"Uncontrollable bladder",
	"Can smell your fears",
	"Doesn't wash their hands after using the restroom",
	"5'2",
	"Has a Sonic OC",
	"63 years old",
	"Holding in a fart right now",
	"Must rhyme while talking",
	"Nose grows longer when they lie",
	"Can't stop applying chapstick",
	"Really sweaty, like REALLY sweaty",
	"Is really bad at Fortnite",
	"Is actually a dog",
	"Swag",
	"Sleeper activation code 'Garfield' makes them act like a cat",
	"Streams on Twitch but only gets 3 viewers",
	"Believes the earth is flat",
	"Allergic to eye contact",
	"Haunted by a polite ghost",
	"Thinks they're in a documentary",
	"Legally banned from one specific IKEA",
	"Only speaks in a whisper after 6pm",
	"Afraid of round objects",
	"Owes the mob $40",
	"Has a twin who does their interviews sometimes",
	"Sponsored by an energy drink nobody has heard of",
	"Convinced birds work for the government",
	"Mild to severe glitter addiction",
	"Was raised by competitive ballroom dancers",
	"Hiccups when lying",
	"Perpetually one espresso too deep",
	"In a long-distance relationship with a lighthouse keeper",
	"Has a parrot that heckles them",
	"Wanted in three states for aggressive couponing",
	"Can hear fluorescent lights judging them",
	"Enters every room dramatically",
	"Thinks applause is for them, always",
	"Secretly two kids in a trench coat",
}
