package batch

import (
	"github.com/dububu/mediatools/pkg/generator"
)

type Job struct {
	Category    string
	Subcategory string
	Theme       string

	Task generator.Task
}

func bannerJob(bannerType, headline string) Job {
	return Job{
		Category:    "banner",
		Subcategory: bannerType,

		Task: generator.Task{Type: generator.TaskBanner, Theme: bannerType, Headline: headline},
	}
}

func productJob(productType, description string) Job {
	return Job{
		Category:    "product",
		Subcategory: productType,

		Task: generator.Task{Type: generator.TaskProduct, ProductType: productType, Description: description},
	}
}

func socialJob(theme, platform string) Job {
	return Job{
		Category:    "social",
		Subcategory: platform,
		Theme:       theme,

		Task: generator.Task{Type: generator.TaskSocial, Theme: theme, Platform: platform},
	}
}

func emailJob(campaign string) Job {
	return Job{
		Category:    "email",
		Subcategory: campaign,

		Task: generator.Task{Type: generator.TaskEmail, Theme: campaign},
	}
}

// LaunchJobs lists every asset needed for the store launch, in generation
// order.
func LaunchJobs() []Job {
	return []Job{
		bannerJob("hero", "Where Every Day is a Love Story"),
		bannerJob("collection", "Matching Couple Sets"),
		bannerJob("collection", "Cozy Home Collection"),
		bannerJob("sale", "Valentine's Day Sale"),

		productJob("plush", "couple set bear and panda"),
		productJob("tshirt", "matching his and hers"),
		productJob("hoodie", "oversized cozy"),
		productJob("mug", "couple mug set"),
		productJob("blanket", "soft throw"),
		productJob("pillow", "decorative cushion"),
		productJob("keychain", "matching set"),
		productJob("phone_case", "cute design"),

		socialJob("couple_goals", "instagram"),
		socialJob("cozy_vibes", "instagram"),
		socialJob("valentines", "instagram"),
		socialJob("new_arrival", "instagram"),
		socialJob("couple_goals", "pinterest"),
		socialJob("cozy_vibes", "facebook"),

		emailJob("welcome"),
		emailJob("abandoned_cart"),
		emailJob("promotion"),
		emailJob("newsletter"),
		emailJob("thank_you"),
	}
}
