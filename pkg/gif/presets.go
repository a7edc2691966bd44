package gif

import (
	"math/rand/v2"
)

const DefaultPresetCategory = "cute"

// Presets are known GIF URLs used when no search credential is available.
var Presets = map[string][]string{
	"love": {
		"https://media.tenor.com/y_v4FLiKK3cAAAAM/kiss-me-through-the-phone-miss-you.gif",
		"https://media.tenor.com/vJRHkcdlEQQAAAAm/casal-dudu.webp",
		"https://media.tenor.com/JcPATwwdUOQAAAAm/bubu-dudu-sseeyall.webp",
		"https://media.tenor.com/90xN7I6NjecAAAAm/bubu-dudu-sseeyall.webp",
	},
	"hug": {
		"https://media.tenor.com/pN7xf12qQcwAAAAM/cuddle-cute.gif",
		"https://media.tenor.com/skrULsl5twcAAAAm/bubududukiwi-twitter.webp",
		"https://media.tenor.com/vzkveVGDzmAAAAAm/dudu-hug-bubu-dudu-kiss.webp",
	},
	"sleep": {
		"https://media.tenor.com/cI9KcgiXQUkAAAAm/sseeyall-bubu-dudu.webp",
		"https://media.tenor.com/oPHqTKxUDo4AAAAm/bubu-dudu-sleep-funny-bubu-dudu-love.webp",
		"https://media.tenor.com/qQNt-BqDtE8AAAAm/bubu-fun-sleep-bubu-dudu-love.webp",
	},
	"cute": {
		"https://media.tenor.com/BvlQdl0TAeIAAAAm/cute.webp",
		"https://media.tenor.com/cwNYjFIdTZ4AAAAm/bubu-cute-bubu-dudu.webp",
		"https://media.tenor.com/eEf0j_M3z9wAAAAm/bubu-dudu-sseeyall.webp",
	},
	"fun": {
		"https://media.tenor.com/HOLG_hTN8WsAAAAm/bubu-jumping-on-dudu-happy.webp",
		"https://media.tenor.com/27dQ8ddrv3AAAAAm/wee.webp",
		"https://media.tenor.com/arLtVbLvu10AAAAm/bubu-dudu-sseeyall.webp",
	},
}

func presetList(category string) []string {
	if urls, ok := Presets[category]; ok {
		return urls
	}

	return Presets[DefaultPresetCategory]
}

// Preset returns the index-th URL of category, wrapping around the list.
// Unknown categories use DefaultPresetCategory.
func Preset(category string, index int) string {
	urls := presetList(category)

	i := index % len(urls)

	if i < 0 {
		i += len(urls)
	}

	return urls[i]
}

func RandomPreset(category string) string {
	urls := presetList(category)
	return urls[rand.IntN(len(urls))]
}
