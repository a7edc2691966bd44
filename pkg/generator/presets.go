package generator

import (
	"context"
	"fmt"

	"github.com/dububu/mediatools/pkg/provider"
)

var productPrompts = map[string]string{
	"plush":      "plush toy %s, soft stuffed animal, product photo on %s background",
	"tshirt":     "t-shirt %s, flat lay, clothing product photo on %s background",
	"hoodie":     "hoodie sweatshirt %s, apparel product photo on %s background",
	"mug":        "ceramic coffee mug %s, drinkware product photo on %s background",
	"blanket":    "soft fleece blanket %s, cozy home product on %s background",
	"pillow":     "throw pillow %s, home decor product on %s background",
	"keychain":   "metal keychain %s, accessory product photo on %s background",
	"phone_case": "smartphone case %s, tech accessory on %s background",
}

var platformSizes = map[string]provider.Size{
	"instagram":       provider.SizeSquareHD,
	"instagram_story": provider.SizePortrait43,
	"facebook":        provider.SizeLandscape43,
	"pinterest":       provider.SizePortrait43,
	"twitter":         provider.SizeLandscape169,
}

var socialThemes = map[string]string{
	"valentines":   "Valentine's Day theme, hearts, pink and red colors, romantic",
	"christmas":    "Christmas theme, festive, snow, holiday decorations, cozy",
	"sale":         "sale promotion, exciting, bold colors, shopping theme",
	"new_arrival":  "new product showcase, fresh, exciting, spotlight",
	"couple_goals": "cute couple moment, romantic, relationship goals, love",
	"cozy_vibes":   "cozy atmosphere, warm, comfortable, hygge aesthetic",
}

var bannerTypes = map[string]string{
	"hero":       "website hero banner, large promotional image, welcoming",
	"collection": "collection banner, category header, themed",
	"sale":       "sale banner, promotional, urgent, exciting deals",
	"seasonal":   "seasonal banner, holiday themed, festive",
}

var emailCampaigns = map[string]string{
	"welcome":        "welcoming, friendly, warm introduction, hello theme",
	"abandoned_cart": "missing you, come back, reminder, friendly nudge",
	"promotion":      "special offer, exciting deal, limited time",
	"newsletter":     "monthly update, news, friendly communication",
	"thank_you":      "gratitude, appreciation, happy, thank you theme",
}

const (
	DefaultBackground = "white"
	DefaultPlatform   = "instagram"
	DefaultPattern    = "seamless"
)

func ProductPrompt(productType, description, background string) string {
	if background == "" {
		background = DefaultBackground
	}

	format, ok := productPrompts[productType]

	if !ok {
		return productType + " " + description
	}

	return fmt.Sprintf(format, description, background)
}

func SocialPrompt(theme, textOverlay string) string {
	themeText, ok := socialThemes[theme]

	if !ok {
		themeText = theme
	}

	prompt := "social media graphic, " + themeText

	if textOverlay != "" {
		prompt += ", space for text overlay saying '" + textOverlay + "'"
	}

	return prompt
}

func PlatformSize(platform string) provider.Size {
	if size, ok := platformSizes[platform]; ok {
		return size
	}

	return provider.SizeSquareHD
}

func BannerPrompt(bannerType, headline string) string {
	prompt, ok := bannerTypes[bannerType]

	if !ok {
		prompt = bannerType
	}

	if headline != "" {
		prompt += ", with space for headline text: " + headline
	}

	return prompt
}

func EmailPrompt(campaign string) string {
	campaignText, ok := emailCampaigns[campaign]

	if !ok {
		campaignText = campaign
	}

	return "email header graphic, " + campaignText
}

func PatternPrompt(style string) string {
	if style == "" {
		style = DefaultPattern
	}

	return style + " pattern, repeating design, tileable, print-ready"
}

func (g *Generator) ProductMockup(ctx context.Context, productType, description, background string) []Result {
	return g.Generate(ctx, Request{
		Prompt: ProductPrompt(productType, description, background),

		Style:     "product",
		Character: "both",

		Size: provider.SizeSquareHD,
		Save: true,
	})
}

func (g *Generator) SocialPost(ctx context.Context, theme, platform, textOverlay string) []Result {
	if platform == "" {
		platform = DefaultPlatform
	}

	return g.Generate(ctx, Request{
		Prompt: SocialPrompt(theme, textOverlay),

		Style:     "social",
		Character: "both",

		Size: PlatformSize(platform),
		Save: true,
	})
}

func (g *Generator) Banner(ctx context.Context, bannerType, headline string, size provider.Size) []Result {
	if size == "" {
		size = provider.SizeLandscape169
	}

	return g.Generate(ctx, Request{
		Prompt: BannerPrompt(bannerType, headline),

		Style:     "banner",
		Character: "both",

		Size: size,
		Save: true,
	})
}

func (g *Generator) EmailHeader(ctx context.Context, campaign string) []Result {
	return g.Generate(ctx, Request{
		Prompt: EmailPrompt(campaign),

		Style:     "romantic",
		Character: "both",

		Size: provider.SizeLandscape169,
		Save: true,
	})
}

func (g *Generator) Pattern(ctx context.Context, style string) []Result {
	return g.Generate(ctx, Request{
		Prompt: PatternPrompt(style),

		Style:     "kawaii",
		Character: "both",

		Size: provider.SizeSquareHD,
		Save: true,
	})
}
