package diet

const (
	CategoryRecommendedFoods = "Recommended Foods"
	CategoryHydration        = "Hydration"
	CategoryFoodsToLimit     = "Foods to Limit"
	CategoryHeartHealthy     = "Heart-Healthy Options"
	CategoryMaintenance      = "Maintenance Tips"
	CategoryAgeSpecific      = "Age-Specific Suggestions"
	CategoryCholesterol      = "Cholesterol Management"
	CategoryBloodPressure    = "Blood Pressure Control"
)

var recommendedFoods = []string{
	"Fresh fruits and vegetables",
	"Whole grains (brown rice, oats, whole wheat)",
	"Lean proteins (chicken, fish, legumes)",
	"Low-fat dairy products",
	"Nuts and seeds (in moderation)",
}

var hydration = []string{
	"Drink 8-10 glasses of water daily",
	"Herbal teas without added sugar",
	"Fresh vegetable juices",
}

var foodsToLimit = []string{
	"Salt and high-sodium foods (processed foods, canned soups)",
	"Saturated fats (fatty meats, full-fat dairy)",
	"Trans fats (fried foods, baked goods)",
	"Added sugars (desserts, sodas, candies)",
	"Alcohol (limit to occasional consumption)",
}

var heartHealthy = []string{
	"Omega-3 rich fish (salmon, mackerel, sardines)",
	"Heart-healthy oils (olive oil, avocado oil)",
	"Berries (strawberries, blueberries, raspberries)",
	"Leafy greens (spinach, kale, collard greens)",
	"Garlic and onions",
	"Dark chocolate (70% or higher cocoa content, in moderation)",
}

var maintenance = []string{
	"Maintain a balanced diet with diverse food groups",
	"Practice portion control",
	"Cook at home more often to control ingredients",
	"Read nutrition labels when shopping",
	"Limit processed and ultra-processed foods",
}

var ageSpecific = []string{
	"Increase calcium and vitamin D intake for bone health",
	"Consider B12 supplementation (consult with healthcare provider)",
	"Reduce sodium intake further to support blood pressure control",
	"Prioritize fiber-rich foods for digestive health",
}

var cholesterolManagement = []string{
	"Increase soluble fiber intake (oats, beans, fruits)",
	"Include plant sterols/stanols (fortified foods)",
	"Consume fatty fish twice a week",
	"Add ground flaxseeds to meals",
	"Consider reducing animal protein consumption",
}

var bloodPressureControl = []string{
	"Follow the DASH diet approach",
	"Limit sodium to less than 1,500mg daily",
	"Increase potassium-rich foods (bananas, potatoes, beans)",
	"Include magnesium-rich foods (nuts, seeds, whole grains)",
	"Consider regular consumption of beetroot juice or beets",
}

func group(category string, items []string) Group {
	return Group{Category: category, Items: append([]string(nil), items...)}
}
