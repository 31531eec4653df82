package registry

// Spending category labels. The set is closed: every transaction carries
// exactly one of these.
const (
	CategoryFood          = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping & Retail"
	CategoryHealthcare    = "Healthcare"
	CategoryUtilities     = "Utilities & Bills"
	CategoryEntertainment = "Entertainment"
	CategorySubscriptions = "Subscriptions & Digital Services"
	CategoryATM           = "ATM & Cash Withdrawals"
	CategoryBanking       = "Banking & Finance"
	CategoryPersonalCare  = "Personal Care"
	CategoryTravel        = "Travel"
	CategoryIncome        = "Income"
	CategoryOther         = "Other Expenses"
)

// Categories is the closed vocabulary offered to the classifier.
var Categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryHealthcare,
	CategoryUtilities,
	CategoryEntertainment,
	CategorySubscriptions,
	CategoryATM,
	CategoryBanking,
	CategoryPersonalCare,
	CategoryTravel,
	CategoryIncome,
	CategoryOther,
}

var categorySet = func() map[string]bool {
	m := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// IsCategory reports whether label belongs to the closed category set.
func IsCategory(label string) bool {
	return categorySet[label]
}

// CategoryPriority is the rule evaluation order. Earlier categories win ties:
// "atm withdrawal fee" is an ATM withdrawal, not a bank fee.
var CategoryPriority = []string{
	CategoryATM,
	CategorySubscriptions,
	CategoryFood,
	CategoryTransport,
	CategoryHealthcare,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryPersonalCare,
	CategoryBanking,
}

// categoryKeywords holds the substring vocabulary for each rule category.
// Mixed UAE and US merchants: the pipeline sees statements from both regions.
var categoryKeywords = map[string][]string{
	CategoryFood: {
		"carrefour", "lulu", "spinneys", "choithrams", "union coop", "waitrose",
		"restaurant", "cafe", "kfc", "mcdonald", "pizza", "subway", "dominos",
		"starbucks", "costa", "dunkin", "burger", "food", "dining", "eat",
		"grocery", "supermarket", "hypermarket", "bakery", "deli", "bistro",
		"catering", "takeaway", "delivery", "zomato", "talabat", "deliveroo",
		"doordash", "grubhub", "uber eats", "postmates", "chipotle", "panera",
		"whole foods", "trader joe", "safeway", "kroger", "target", "walmart",
		"donuts", "coffee", "espresso", "bacio di latte", "butchery", "zinque",
		"ralphs", "albertsons", "vons", "pavilions", "publix", "wegmans", "harris teeter",
	},
	CategoryTransport: {
		"adnoc", "eppco", "enoc", "petrol", "fuel", "gas", "gasoline",
		"taxi", "uber", "careem", "metro", "bus", "rta", "parking",
		"salik", "toll", "car wash", "transport", "emirates", "etihad",
		"flydubai", "air arabia", "airline", "flight", "airport",
		"chevron", "shell", "bp", "76", "exxon", "mobil", "lyft",
		"parking services", "toll roads", "valet",
	},
	CategoryShopping: {
		"mall", "centrepoint", "max", "home centre", "ikea", "ace",
		"sharaf dg", "jumbo", "electronics", "clothing", "fashion",
		"shop", "store", "retail", "amazon", "noon", "souq", "namshi",
		"h&m", "zara", "nike", "adidas", "apple", "samsung", "virgin",
		"uniqlo", "target", "walmart", "costco", "best buy", "macy",
		"nordstrom", "kohls", "tj maxx", "ross", "marshalls",
	},
	CategoryHealthcare: {
		"hospital", "clinic", "pharmacy", "medical", "doctor", "health",
		"dental", "medicare", "aster", "nmc", "mediclinic", "life pharmacy",
		"boots", "aster pharmacy", "day today pharmacy",
	},
	CategoryUtilities: {
		"dewa", "addc", "sewa", "fewa", "etisalat", "du", "internet",
		"mobile", "telecom", "electricity", "water", "gas", "utility", "bill",
		"wifi", "broadband", "phone bill", "electric bill",
	},
	CategoryEntertainment: {
		"cinema", "movie", "vox", "reel", "netflix", "osn", "gaming",
		"entertainment", "park", "beach", "attraction", "ticket", "event",
		"spotify", "youtube", "disney", "amazon prime", "hulu", "shahid",
		"disneyland", "balloon museum", "sawdust festival", "museum", "amusement",
	},
	CategorySubscriptions: {
		"netflix", "spotify", "youtube premium", "amazon prime", "disney+",
		"adobe", "microsoft", "google", "icloud", "dropbox", "zoom",
		"subscription", "monthly", "annual", "recurring", "saas",
		"software", "app store", "play store", "itunes", "office 365",
	},
	CategoryATM: {
		"atm", "cash withdrawal", "withdrawal", "atm withdrawal",
		"cash advance", "atm fee", "withdrawal fee",
	},
	CategoryBanking: {
		"transfer", "fee", "charge", "finance", "loan", "interest",
		"bank fee", "service charge", "maintenance fee", "overdraft",
		"wire transfer", "remittance", "exchange",
	},
	CategoryPersonalCare: {
		"salon", "spa", "barbershop", "beauty", "cosmetics", "skincare",
		"haircut", "manicure", "pedicure", "massage", "gym", "fitness",
		"24hourfitness", "planet fitness", "la fitness", "crunch", "equinox",
		"flex fitness", "orangetheory",
	},
}

// guardTerms must ALSO match before the category is accepted. They keep
// broad keywords from mis-tagging: a grocer whose name contains "fee" is not
// a bank charge.
var guardTerms = map[string][]string{
	CategoryATM:           {"atm", "withdrawal", "cash"},
	CategorySubscriptions: {"subscription", "monthly", "netflix", "spotify", "prime", "office", "adobe", "google", "microsoft", "icloud"},
	CategoryBanking:       {"transfer", "fee", "charge", "interest", "maintenance"},
}

// Keywords returns the substring vocabulary for a rule category.
func Keywords(category string) []string {
	return categoryKeywords[category]
}

// GuardTerms returns the confirmation terms for a category, or nil when the
// category has no guard.
func GuardTerms(category string) []string {
	return guardTerms[category]
}

// BroadFallback is a loose word check applied after the priority pass.
type BroadFallback struct {
	Terms    []string
	Category string
}

// BroadFallbacks catch common transaction types whose keyword never fired
// through the guarded priority pass.
var BroadFallbacks = []BroadFallback{
	{[]string{"taxi", "uber", "careem", "rta"}, CategoryTransport},
	{[]string{"restaurant", "cafe", "food", "dining", "eat"}, CategoryFood},
	{[]string{"mall", "shop", "store", "retail"}, CategoryShopping},
}

// Merchant is an exact merchant-name fallback entry.
type Merchant struct {
	Name     string
	Category string
}

// Merchants is the last-resort merchant table, checked before defaulting to
// "Other Expenses".
var Merchants = []Merchant{
	{"CAREEM", CategoryTransport},
	{"TALABAT", CategoryFood},
	{"ZOMATO", CategoryFood},
	{"NETFLIX", CategorySubscriptions},
	{"SPOTIFY", CategorySubscriptions},
	{"AMAZON", CategoryShopping},
	{"NOON", CategoryShopping},
	{"ADNOC", CategoryTransport},
	{"ENOC", CategoryTransport},
	{"EPPCO", CategoryTransport},
}
