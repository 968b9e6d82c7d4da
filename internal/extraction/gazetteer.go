package extraction

// defaultGazetteer is the ordered list of known city names used for exact
// and fuzzy city matching. Scan order is significant: the first substring
// hit wins. Several entries appear twice ("thane", "gurgaon", "noida",
// "faridabad", "ghaziabad"); the duplicates are harmless and removing them
// would shift the scan order, so they stay.
var defaultGazetteer = []string{
	"mumbai", "delhi", "bangalore", "hyderabad", "chennai", "kolkata", "pune",
	"ahmedabad", "jaipur", "surat", "lucknow", "kanpur", "nagpur", "indore",
	"thane", "bhopal", "visakhapatnam", "pimpri", "patna", "vadodara", "ghaziabad",
	"ludhiana", "agra", "nashik", "faridabad", "meerut", "rajkot", "kalyan",
	"vasai", "varanasi", "srinagar", "aurangabad", "dhanbad", "amritsar",
	"navi mumbai", "allahabad", "ranchi", "howrah", "coimbatore", "jabalpur",
	"gwalior", "vijayawada", "jodhpur", "madurai", "raipur", "kota", "chandigarh",
	"guwahati", "solapur", "hubli", "tiruchirappalli", "bareilly", "mysore",
	"tirupur", "gurgaon", "aligarh", "jalandhar", "bhubaneswar", "salem",
	"mira", "thane", "mathura", "bhiwandi", "saharanpur", "gorakhpur",
	"bikaner", "amravati", "noida", "jamshedpur", "bhilai", "cuttack",
	"firozabad", "kochi", "nellore", "bhavnagar", "tirupati", "kurnool",
	"rajahmundry", "tumkur", "kishanganj", "erode", "bokaro", "south dumdum",
	"bellary", "patiala", "gurgaon", "noida", "faridabad", "ghaziabad",
}
