package catalog

import (
	"github.com/daftar-app/daftar/internal/models"
)

var azkarLists = map[models.AzkarCategory][]models.ZikrItem{
	models.AzkarMorning: {
		{Text: "أَصْبَحْنَا وَأَصْبَحَ الْمُلْكُ لِلَّهِ", Count: 1},
		{Text: "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ", Count: 100},
		{Text: "لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ", Count: 10},
		{Text: "أَعُوذُ بِكَلِمَاتِ اللَّهِ التَّامَّاتِ مِنْ شَرِّ مَا خَلَقَ", Count: 3},
		{Text: "آية الكرسي", Count: 1, Note: "after Fajr"},
	},
	models.AzkarEvening: {
		{Text: "أَمْسَيْنَا وَأَمْسَى الْمُلْكُ لِلَّهِ", Count: 1},
		{Text: "أَسْتَغْفِرُ اللَّهَ وَأَتُوبُ إِلَيْهِ", Count: 100},
		{Text: "بِسْمِ اللَّهِ الَّذِي لَا يَضُرُّ مَعَ اسْمِهِ شَيْءٌ", Count: 3},
		{Text: "المعوذتان وسورة الإخلاص", Count: 3},
	},
	models.AzkarSleep: {
		{Text: "بِاسْمِكَ اللَّهُمَّ أَمُوتُ وَأَحْيَا", Count: 1},
		{Text: "سُبْحَانَ اللَّهِ", Count: 33},
		{Text: "الْحَمْدُ لِلَّهِ", Count: 33},
		{Text: "اللَّهُ أَكْبَرُ", Count: 34},
		{Text: "آية الكرسي", Count: 1, Note: "before sleeping"},
	},
}

// AzkarList returns the built-in zikr items for a category. The second
// return is false for categories without built-in content.
func AzkarList(c models.AzkarCategory) ([]models.ZikrItem, bool) {
	items, ok := azkarLists[c]
	return items, ok
}

// AzkarHabit finds the religious habit carrying the given category, or
// false when none does.
func AzkarHabit(habits []models.ReligiousHabit, c models.AzkarCategory) (models.ReligiousHabit, bool) {
	for _, h := range habits {
		if h.Azkar == c && c != models.AzkarNone {
			return h, true
		}
	}
	return models.ReligiousHabit{}, false
}
