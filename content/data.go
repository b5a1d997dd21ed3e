package content

const HeroImage = "https://lh3.googleusercontent.com/aida-public/AB6AXuAEKv63V_cwjk2VC6D4xazItLka_M3g5oSlITqbyV9NP-N5a5tWGLFPb054KVUDBmdaWvJRe6UNJ_-SqsmaH2uqS95wTd0QRu9HC5RTNLrFGvz-PWqzJ8rLXQazEOL2L4CThjpx0ngSY8AYJt8elR1DfZreS3EoZtN8ufzZUGxenbLnkFjU7pT5ib01R2XmDFf-09QbI_0xmk0ED5y2xiMJIJXiVH4Vmtj_JWBA1QIZiD61y2-wyVU_FCnU-sWKQUPw7TpSdZRa6lo"

var Services = []Service{
	{
		Title:       "Personal Training",
		Description: "Get a custom blueprint for your body. Our elite coaches provide dedicated one-on-one sessions tailored to your goals.",
		Icon:        "user-check",
	},
	{
		Title:       "Cardio Zone",
		Description: "High-performance metabolic conditioning with the latest treadmills, rowers, and air bikes to boost your endurance.",
		Icon:        "activity",
	},
	{
		Title:       "Weightlifting",
		Description: "A massive selection of free weights, Olympic lifting platforms, and professional machines for all skill levels.",
		Icon:        "dumbbell",
	},
}

var Plans = []Plan{
	{
		Name:     "Basic Tier",
		Price:    "29",
		Features: []string{"Full Gym Access", "Locker Room & Showers", "Free Wi-Fi"},
		Button:   "Choose Basic",
	},
	{
		Name:     "Elite Pro",
		Price:    "59",
		Features: []string{"Everything in Basic", "Unlimited Group Classes", "1 Personal Training Session", "Recovery Lounge Access"},
		Button:   "Get Elite Pro",
		Popular:  true,
	},
	{
		Name:     "Power Team",
		Price:    "99",
		Features: []string{"Access for 2 People", "All Elite Pro Benefits", "Monthly Progress Report"},
		Button:   "Choose Team",
	},
}

var Trainers = []Trainer{
	{
		Name:  "Ahmed Mohamed",
		Role:  "Bodybuilding Expert",
		Bio:   "10+ years experience in strength training and contest prep. Specialized in hyper-trophy and metabolic conditioning.",
		Image: "https://lh3.googleusercontent.com/aida-public/AB6AXuABoI4g0KhCU6L0JIpuGLHWfORjhsqqIcLShO3j1mwpl-1Rkj5_nfqbX1-Y392f26Ccv3K7lD2s51txqgpZ2bTw-0-B8VGE-ddynefpPnk9rZDVwQJ_JlukJbPPeKESFJMipOKv2xADwgvG0hH1v8mQLepgVmeRntBqp-5YWU209B3EUjssV6Ff8l0PofkdyjgDzO3DpD5DXwVUMZiftAlVODsqD5Loru0RPkygjJPGk9WMLre8ESR6IUmGD1KkIvPUjpG34snFanY",
	},
	{
		Name:  "Fartun Ali",
		Role:  "Yoga Specialist",
		Bio:   "Certified vinyasa flow instructor focusing on mindfulness, flexibility, and core stability for all levels.",
		Image: "https://lh3.googleusercontent.com/aida-public/AB6AXuC0zfxJ9Su0ojwNOPAPim_RXctsueksDFM2qfR5m2NWFJvRoTjPA00Aw6at6NObmuvncRrclXq1W-hY-SzIN6xpIGYFZVMeYk5VJIE7g1Y8IIdowPK4byjRnTMq0vaBrmWtEhdzlWwEEwpulxwb0VXOYjAXymAnqGbGlMYAsCFjZRT5k_SZaZBGs75YrrFlnIMdeAhtSIaPYSakn-rYawNLzq85n3CggNwfGvijXP6TDvAi-p2cJYomy9INmwzOW_i1qO8KNhLhAsI",
	},
	{
		Name:  "Omar Hassan",
		Role:  "Nutritionist",
		Bio:   "Specializing in weight management, athletic performance, and creating sustainable meal plans for busy Mogadishu lifestyles.",
		Image: "https://lh3.googleusercontent.com/aida-public/AB6AXuBdd1XGJLYqbE-oTQ5L2FVaXtBlcyqcC9RY-tHWL9SjgcGyfLmTaH7FWw8dk1P2MI_yJAL7zXMHm_FHaj0wFACM9LLC4oGlSaRS_ksOKTv66Ze9gqGKiUXvFQT9jmckyPZ0GYl2O9dgtQ6nxKP3MZdbsaWBgJAxdHtgVuKVn_n4DsXB8ABbrAM4y26h5yBBTFzVrpnFaVGQwop75CTpE8N7_Uy_KGYJRItap6AMcCTtqOSwISjQ2yB_EoeONIAIvNRcK2fiM7m4jns",
	},
}

var Classes = []Class{
	{
		Name:     "Elite Boxing",
		Time:     "06:00 AM - 07:30 AM",
		Coach:    "Coach Ahmed",
		Category: "Strength",
		Image:    "https://lh3.googleusercontent.com/aida-public/AB6AXuA2ydLnTcqkJWwrUW-0pqq2w9yYY-wKu_ITtfAMZj3H2l6BQTjltMblos5CrgQ8hgOTcUvDarL9cdka9OlY_4eYTXZJ5cLZDgE4HjaCdsLyGIBqfnfti9DIi4rgtOWk7aS3CPgbUTKfK9_fN9hD9ydD1-EbuUM_guu6UommoKfwvp13p3q50bOnRDb6h3Mef7Qyy8zKEjLLQ4vDC-o9oUw4DiQ54b_5ks_LYarOiNikKvkmDl4-jnVLj_E467dB_m6z8s9tQUXEkQ4",
	},
	{
		Name:     "Morning HIIT",
		Time:     "08:00 AM - 09:00 AM",
		Coach:    "Trainer Sumaya",
		Category: "Cardio",
		Image:    "https://lh3.googleusercontent.com/aida-public/AB6AXuD91jobQS8VAPMcDOgSeUflgzxUBtsW6iGb_GDjrutiVKeqePWeTq3TKB6umEKIk23kpaw56jHPJ9Bq8oE3_mN2qkBKiqtQ_jrwFDtiqlV_UF9QopnCOU5FCArfemrIvh-TccdS__gJnqWlx3pTbILf7Bul9m52JusD70IOpq_PAB3Iegv8Gnz2jb43dM00AgcxEzX8kbpPBx7Dl0xkbz7rpPv9zMFpvC0A68qMOynHzdP9r1PKA9zBv5HkV8lINjSQiyPubuxgS1Y",
	},
	{
		Name:     "Zen Flow Yoga",
		Time:     "10:30 AM - 11:30 AM",
		Coach:    "Master Ali",
		Category: "Flexibility",
		Image:    "https://lh3.googleusercontent.com/aida-public/AB6AXuAtbMJrqRgFJpoPjsVaOapnfFmBat5WIBj4B5EezhAG8F80DuULub2jvMHBACRKzteOZiLqGmNH6bFUoJXCFHt0YMyS5UOM7OwXmgFdeN8t09yy5hxVf8JOOl7u1rt7DKsiefxJjNlhO6nApFufzJYOMmdMl3xWKjqaLHHJvMWNoHJSCq-GPz63SoupgpGLO4GlZ8MGYO51mCDWqAeRY8h7A9WhEPs5J8CwQVoETr_FTDg7OaXI1It5RKtDZseYKgfW9CTu9H8qd9k",
	},
}

var Products = []Product{
	{
		Name:        "Whey Protein Isolate",
		Price:       "65.00",
		Description: "Chocolate Fudge • 2.2kg",
		Tag:         "Top Seller",
		Image:       "https://lh3.googleusercontent.com/aida-public/AB6AXuDe_pSjRTwJG852Hjd_axfk7YRJL1oPKmkwTUp-zf_vMNeH9wrzaH069khrxD_GMoGPjbRtxexYlpDrjTYY_PKoP0uAqGd_JcTDzABulxoBa-RqIjrcmKrFO6gZBF_DXspxzdXIRTSq0zwqsPz30gf9i_SdYdcK-Bxas5aZu-aaHMt1lMfQi5kvjfZ16BybLnw8CcZ9xGrN2EX8maNRFAl6sQXEx1kca5HyzMgyK6FUruc50o5OVa6YpMm7zdGDSIZBXtzMbluYpzs",
	},
	{
		Name:        "Adjustable Dumbbells",
		Price:       "145.00",
		Description: "Pair • 2.5kg to 24kg",
		Image:       "https://lh3.googleusercontent.com/aida-public/AB6AXuCch24L7x8xAyOIi0YI7N79pwEVdtVs_niRiBPsQ3gH9_uFqS1V9zFx_4axqhj7lm-sNM2qqCIi2D6vx2xP1YIch1v472g62duVWCFAZsPTTYOIvAu2F_eSt8Kbz2YV-S5aVwTDLFEUP91Buqahlb1dBSgcjmuFuoLK_y2cwl6YFkcLvQ_EVfKHEeQkC0fR-KrAEWJ-MihaBSfig1jXvjQG9JAcGKq_0PZc1TByLlMwoy_W7_9AkXFavCaNis32PyMqPVQLwQkyp0g",
	},
	{
		Name:        "Performance Tee",
		Price:       "32.00",
		Description: "Breathable • Navy Blue",
		Image:       "https://lh3.googleusercontent.com/aida-public/AB6AXuBbf6mBDSbXiLWdhaCvNAM3w2vxCyH4-YyFqinohtNIFjegRYur6xlMxdMUfquUc7w8TbGPwTRMYDUSEXUqqCjhzN6g9ljaVtrpaIbEGItJdY31We5VDsOQRYAO6aEJoZRaN-Klt8giL_IrKyYL8XesQzvKRSeXwQhabTpEepBFaDDyX0wnGQeRJYksV-fQ1dEOGrbx00fQanp4MvV3XCUEAZ0STGfoJOQzouI26ej_MS-MeyYu4y_KGFAK26VK7JVxeAU27SLeKSw",
	},
	{
		Name:        "Recovery Foam Roller",
		Price:       "24.00",
		Description: "High-Density • 18-inch",
		Image:       "https://lh3.googleusercontent.com/aida-public/AB6AXuC82Gdwwkt_i-Rl5r5UqK8JRlF8ZkcLo7Ic8_6xLAroHyRI9W3RAY7_5SSpRFwV68pvQXTlgtQKvIgP5OyZJKNFFLBddXHj6CmBZ0MK2ELFAHxf5aQxcizAa-vrRjoaOtTEh8gIDo0ljwMhAEad8YAX0Se-3q3h7oNQ-ojrqmmiNAFRgrWOlHIIXGegVD7qcEo-41CYCMqGzzdy2znJJGSEmAscY5S_cNJ5hUTJwqoiZL9OvEXEUcKs9k5XkZaOuEBNkDdA_KnqP9A",
	},
}

var ContactDetails = []ContactDetail{
	{Title: "Our Location", Icon: "map-pin", Lines: []string{"Main Road, Waberi District, Mogadishu, Somalia"}},
	{Title: "Phone Numbers", Icon: "phone", Lines: []string{"+252 61 XXX XXXX", "+252 69 XXX XXXX"}},
	{Title: "Working Hours", Icon: "calendar", Lines: []string{"Sat - Thu: 6:00 AM - 10:00 PM", "Friday: 2:00 PM - 10:00 PM"}},
}

var QuickLinks = []FooterLink{
	{Label: "Find a Class"},
	{Label: "Our Trainers"},
	{Label: "Membership Perks"},
	{Label: "Success Stories"},
}

var FooterAddress = []string{"KM4 Junction, Wadada Maka Al Mukarama", "Mogadishu, Somalia"}

const (
	FooterPhone = "+252 61 XXX XXXX"
	FooterEmail = "info@muqdishoshop.so"
	Copyright   = "© 2024 Muqdisho Shop Plus Gym. All rights reserved."
)
