package blogify

import (
	"time"
)

// seedAuthorID is the author attached to the bundled blogs. It references
// no stored user on purpose: seeded blogs belong to nobody and cannot be
// edited or deleted from the UI.
const seedAuthorID = "11111111-1111-4111-8111-111111111111"

// DefaultBlogs returns the dataset used to populate an empty store on
// first run. Newest first, like the live collection.
func DefaultBlogs() []Blog {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 9, 0, 0, 0, time.UTC)
	}

	return []Blog{
		{
			ID:       "5f0c54e5-0df5-4b89-9db1-7c1f0f6a2a01",
			Title:    "A Weekend in Kyoto",
			Content:  "Temples at dawn, matcha at noon and the quiet of the Philosopher's Path. Kyoto rewards the early riser: by eight the tour buses arrive, but the first two hours belong to you and the herons.",
			Category: "Travel",
			AuthorID: seedAuthorID,
			Date:     day(21),
		},
		{
			ID:       "8b4f3a0e-2c3d-4f6a-9b2e-0d5c4e7a2a02",
			Title:    "Why I Still Write Plain SQL",
			Content:  "Every few years a new abstraction promises to hide the database. Every few years I end up back at the prompt, EXPLAIN in hand. Plain SQL is not a lack of sophistication, it is a refusal to debug two systems at once.",
			Category: "Technology",
			AuthorID: seedAuthorID,
			Date:     day(18),
		},
		{
			ID:       "c2a9d8f1-6e4b-4c7d-8a3f-1e6d5f8b2a03",
			Title:    "Sourdough for Impatient People",
			Content:  "You do not need a century-old starter or a proofing cabinet. You need flour, water, salt, a dutch oven and the discipline to leave the dough alone. Here is the schedule that survives a full-time job.",
			Category: "Food",
			AuthorID: seedAuthorID,
			Date:     day(14),
		},
		{
			ID:       "e7b1c4d9-3f2a-4e8b-b5c6-2f7e6a9c2a04",
			Title:    "Running Before Sunrise",
			Content:  "The first kilometre is always a negotiation. After that the streets are empty, the air is cold and the day has not had a chance to go wrong yet. Six months of 5am runs, summarised.",
			Category: "Lifestyle",
			AuthorID: seedAuthorID,
			Date:     day(9),
		},
		{
			ID:       "a3d6e9b2-7c1f-4a5d-9e8b-3a8f7b0d2a05",
			Title:    "Reading Old Field Notes",
			Content:  "I found a box of notebooks from my first field season. Half the entries are weather complaints, the other half are questions I have since spent a decade answering. Keep your notes; your future self is the audience.",
			Category: "Science",
			AuthorID: seedAuthorID,
			Date:     day(5),
		},
		{
			ID:       "f8c2b5a7-1d9e-4b3c-a6f4-4b9a8c1e2a06",
			Title:    "The Case for Small Apartments",
			Content:  "Thirty-two square metres, one wall of books, nothing I do not use weekly. Small spaces make decisions for you, and most of those decisions turn out to be good ones.",
			Category: "Lifestyle",
			AuthorID: seedAuthorID,
			Date:     day(2),
		},
		{
			ID:       "b9e4d7c3-8a2b-4d6e-8c1a-5c0b9d2f2a07",
			Title:    "Street Food in Oaxaca",
			Content:  "Tlayudas after midnight, tejate at the market, and the grasshopper question settled once and for all. A week of eating through Oaxaca on a student budget.",
			Category: "Food",
			AuthorID: seedAuthorID,
			Date:     day(1),
		},
	}
}
