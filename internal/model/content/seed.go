package content

// Seed returns the six informational pages of the site.
func Seed() []Page {
	return []Page{
		{
			Slug:    "home",
			Title:   "MindHaven",
			Tagline: "Someone to talk to, whenever you need it.",
			Sections: []Section{
				{Heading: "You don't have to carry it alone", Body: "Whether you need to vent for ten minutes or want structured support over months, there's a place for you here."},
				{Heading: "Three ways in", Body: "Instant peer venting, one-on-one coaching, and a vetted directory of licensed therapists. Start wherever feels right."},
			},
		},
		{
			Slug:    "about",
			Title:   "About MindHaven",
			Tagline: "Built by people who needed it first.",
			Sections: []Section{
				{Heading: "Why we exist", Body: "Most people who are struggling never reach a professional. We lower the first step until it's almost flat."},
				{Heading: "What we are not", Body: "We are not a clinic. Our listeners and coaches are not licensed clinicians, and nothing here replaces medical care."},
			},
		},
		{
			Slug:    "services",
			Title:   "Services",
			Tagline: "From a quick vent to long-term care.",
			Sections: []Section{
				{Heading: "Compare the options", Body: "Venting is free and instant. Coaching is paid and goal-driven. Therapy is clinical care from licensed professionals we help you find."},
			},
		},
		{
			Slug:    "venting",
			Title:   "Venting",
			Tagline: "Say it out loud. Someone is listening.",
			Sections: []Section{
				{Heading: "How it works", Body: "Tap once and you're matched with a trained peer listener within minutes. Anonymous, free, no appointment."},
				{Heading: "Good to know", Body: "Listeners are peers, not professionals. If you need more than an ear, we'll point you to coaching or therapy."},
			},
		},
		{
			Slug:    "coaching",
			Title:   "Coaching",
			Tagline: "A plan, a person, a path forward.",
			Sections: []Section{
				{Heading: "How it works", Body: "Recurring one-on-one sessions with a certified life coach, focused on concrete goals you set together."},
				{Heading: "Coaching is not therapy", Body: "Coaches work on the future, not on diagnoses. If something clinical comes up, your coach will say so and help you find a therapist."},
			},
		},
		{
			Slug:    "therapy",
			Title:   "Therapy",
			Tagline: "Licensed care, demystified.",
			Sections: []Section{
				{Heading: "How it works", Body: "Browse our vetted directory of licensed therapists, filter by specialty and budget, and learn what to expect from a first session."},
				{Heading: "When therapy is the right door", Body: "Persistent low mood, anxiety that won't lift, trauma that keeps surfacing — that's work for a professional, and finding one is easier than you think."},
			},
		},
	}
}
