package memory

import "github.com/kisanmitra/backend/internal/domain"

func seedWeather() []domain.WeatherForecast {
	return []domain.WeatherForecast{
		{Date: "Today", Temperature: 32, Humidity: 65, Precipitation: 0, Condition: "Sunny", Icon: "sunny"},
		{Date: "Tomorrow", Temperature: 30, Humidity: 70, Precipitation: 20, Condition: "Partly Cloudy", Icon: "partly-cloudy"},
		{Date: "Wed", Temperature: 28, Humidity: 75, Precipitation: 60, Condition: "Rain Expected", Icon: "rain"},
		{Date: "Thu", Temperature: 27, Humidity: 80, Precipitation: 80, Condition: "Heavy Rain", Icon: "rain"},
		{Date: "Fri", Temperature: 29, Humidity: 70, Precipitation: 30, Condition: "Cloudy", Icon: "cloudy"},
		{Date: "Sat", Temperature: 31, Humidity: 65, Precipitation: 10, Condition: "Partly Cloudy", Icon: "partly-cloudy"},
		{Date: "Sun", Temperature: 33, Humidity: 60, Precipitation: 5, Condition: "Sunny", Icon: "sunny"},
	}
}

func seedSchemes() []domain.Scheme {
	return []domain.Scheme{
		{
			ID:               "pm-kisan",
			Name:             "PM-KISAN",
			NameHindi:        "पीएम-किसान",
			Description:      "Direct income support of ₹6,000 per year to farmer families",
			DescriptionHindi: "किसान परिवारों को प्रति वर्ष ₹6,000 की प्रत्यक्ष आय सहायता",
			BenefitAmount:    "₹6,000/year",
			Eligibility: []string{
				"Small and marginal farmer families",
				"Landholding up to 2 hectares",
				"Valid Aadhaar card",
				"Active bank account",
			},
			Documents: []string{"Aadhaar Card", "Land Records", "Bank Passbook", "Passport Photo"},
			Deadline:  "Rolling enrollment",
			Status:    domain.SchemeEligible,
			ApplyURL:  "https://pmkisan.gov.in",
			Category:  "Income Support",
		},
		{
			ID:               "pmfby",
			Name:             "PM Fasal Bima Yojana",
			NameHindi:        "पीएम फसल बीमा योजना",
			Description:      "Crop insurance scheme with minimal premium for farmers",
			DescriptionHindi: "किसानों के लिए न्यूनतम प्रीमियम पर फसल बीमा योजना",
			BenefitAmount:    "Up to ₹2,00,000",
			Eligibility: []string{
				"All farmers growing notified crops",
				"Loanee and non-loanee farmers",
				"Share-croppers and tenant farmers",
			},
			Documents: []string{"Land Records", "Sowing Certificate", "Bank Account Details", "Aadhaar Card"},
			Deadline:  "Before sowing season",
			Status:    domain.SchemeEligible,
			ApplyURL:  "https://pmfby.gov.in",
			Category:  "Insurance",
		},
		{
			ID:               "kcc",
			Name:             "Kisan Credit Card",
			NameHindi:        "किसान क्रेडिट कार्ड",
			Description:      "Credit facility for farmers at subsidized interest rates",
			DescriptionHindi: "किसानों को रियायती ब्याज दरों पर ऋण सुविधा",
			BenefitAmount:    "Up to ₹3,00,000",
			Eligibility: []string{
				"All farmers - individual/joint",
				"Tenant farmers",
				"Oral lessees",
				"Share croppers",
			},
			Documents: []string{"Identity Proof", "Address Proof", "Land Documents", "Passport Photos"},
			Status:    domain.SchemeApplied,
			ApplyURL:  "https://www.nabard.org",
			Category:  "Credit",
		},
		{
			ID:               "smam",
			Name:             "Sub-Mission on Agricultural Mechanization",
			NameHindi:        "कृषि मशीनीकरण पर उप-मिशन",
			Description:      "Subsidy on purchase of agricultural machinery",
			DescriptionHindi: "कृषि मशीनरी की खरीद पर सब्सिडी",
			BenefitAmount:    "40-50% subsidy",
			Eligibility: []string{
				"Individual farmers",
				"Farmer Producer Organizations",
				"Self Help Groups",
				"Cooperatives",
			},
			Documents: []string{"Land Records", "Quotation from Dealer", "Bank Account", "Aadhaar Card"},
			Deadline:  "March 31, 2025",
			Status:    domain.SchemeEligible,
			ApplyURL:  "https://agrimachinery.nic.in",
			Category:  "Subsidy",
		},
		{
			ID:               "pkvy",
			Name:             "Paramparagat Krishi Vikas Yojana",
			NameHindi:        "परंपरागत कृषि विकास योजना",
			Description:      "Support for organic farming practices",
			DescriptionHindi: "जैविक खेती प्रथाओं के लिए सहायता",
			BenefitAmount:    "₹50,000/hectare",
			Eligibility: []string{
				"Farmers willing to adopt organic farming",
				"Minimum 20 farmers per cluster",
				"Contiguous land area of 20 hectares",
			},
			Documents: []string{"Land Records", "Group Formation Certificate", "Aadhaar Card"},
			Status:    domain.SchemeReceived,
			Category:  "Organic Farming",
		},
	}
}

func seedStates() []domain.StateData {
	return []domain.StateData{
		{ID: "punjab", Name: "Punjab", NameHindi: "पंजाब", SoilTypes: []string{"Alluvial", "Loamy"}, MajorCrops: []string{"Wheat", "Rice", "Cotton", "Maize"}, CurrentSeason: "Rabi", HarvestPeriod: "April-May", AverageRainfall: 649, Coordinates: domain.Coordinates{Lat: 31.1471, Lng: 75.3412}},
		{ID: "haryana", Name: "Haryana", NameHindi: "हरियाणा", SoilTypes: []string{"Alluvial", "Sandy Loam"}, MajorCrops: []string{"Wheat", "Rice", "Sugarcane", "Cotton"}, CurrentSeason: "Rabi", HarvestPeriod: "April-May", AverageRainfall: 573, Coordinates: domain.Coordinates{Lat: 29.0588, Lng: 76.0856}},
		{ID: "uttar-pradesh", Name: "Uttar Pradesh", NameHindi: "उत्तर प्रदेश", SoilTypes: []string{"Alluvial", "Black", "Sandy"}, MajorCrops: []string{"Wheat", "Rice", "Sugarcane", "Potato"}, CurrentSeason: "Rabi", HarvestPeriod: "March-May", AverageRainfall: 990, Coordinates: domain.Coordinates{Lat: 26.8467, Lng: 80.9462}},
		{ID: "maharashtra", Name: "Maharashtra", NameHindi: "महाराष्ट्र", SoilTypes: []string{"Black", "Red", "Laterite"}, MajorCrops: []string{"Cotton", "Sugarcane", "Soybean", "Jowar"}, CurrentSeason: "Rabi", HarvestPeriod: "February-April", AverageRainfall: 1139, Coordinates: domain.Coordinates{Lat: 19.7515, Lng: 75.7139}},
		{ID: "gujarat", Name: "Gujarat", NameHindi: "गुजरात", SoilTypes: []string{"Black", "Alluvial", "Sandy"}, MajorCrops: []string{"Cotton", "Groundnut", "Wheat", "Cumin"}, CurrentSeason: "Rabi", HarvestPeriod: "March-April", AverageRainfall: 820, Coordinates: domain.Coordinates{Lat: 22.2587, Lng: 71.1924}},
		{ID: "rajasthan", Name: "Rajasthan", NameHindi: "राजस्थान", SoilTypes: []string{"Sandy", "Alluvial", "Saline"}, MajorCrops: []string{"Wheat", "Bajra", "Mustard", "Pulses"}, CurrentSeason: "Rabi", HarvestPeriod: "March-April", AverageRainfall: 313, Coordinates: domain.Coordinates{Lat: 27.0238, Lng: 74.2179}},
		{ID: "madhya-pradesh", Name: "Madhya Pradesh", NameHindi: "मध्य प्रदेश", SoilTypes: []string{"Black", "Alluvial", "Red"}, MajorCrops: []string{"Soybean", "Wheat", "Gram", "Rice"}, CurrentSeason: "Rabi", HarvestPeriod: "March-April", AverageRainfall: 1160, Coordinates: domain.Coordinates{Lat: 22.9734, Lng: 78.6569}},
		{ID: "karnataka", Name: "Karnataka", NameHindi: "कर्नाटक", SoilTypes: []string{"Red", "Black", "Laterite"}, MajorCrops: []string{"Rice", "Ragi", "Jowar", "Cotton"}, CurrentSeason: "Rabi", HarvestPeriod: "January-March", AverageRainfall: 1248, Coordinates: domain.Coordinates{Lat: 15.3173, Lng: 75.7139}},
		{ID: "tamil-nadu", Name: "Tamil Nadu", NameHindi: "तमिलनाडु", SoilTypes: []string{"Red", "Black", "Alluvial"}, MajorCrops: []string{"Rice", "Sugarcane", "Cotton", "Groundnut"}, CurrentSeason: "Rabi", HarvestPeriod: "January-March", AverageRainfall: 998, Coordinates: domain.Coordinates{Lat: 11.1271, Lng: 78.6569}},
		{ID: "andhra-pradesh", Name: "Andhra Pradesh", NameHindi: "आंध्र प्रदेश", SoilTypes: []string{"Red", "Black", "Alluvial"}, MajorCrops: []string{"Rice", "Groundnut", "Cotton", "Chilli"}, CurrentSeason: "Rabi", HarvestPeriod: "January-March", AverageRainfall: 912, Coordinates: domain.Coordinates{Lat: 15.9129, Lng: 79.74}},
		{ID: "west-bengal", Name: "West Bengal", NameHindi: "पश्चिम बंगाल", SoilTypes: []string{"Alluvial", "Red", "Laterite"}, MajorCrops: []string{"Rice", "Jute", "Potato", "Wheat"}, CurrentSeason: "Rabi", HarvestPeriod: "March-April", AverageRainfall: 1750, Coordinates: domain.Coordinates{Lat: 22.9868, Lng: 87.855}},
		{ID: "bihar", Name: "Bihar", NameHindi: "बिहार", SoilTypes: []string{"Alluvial", "Sandy Loam"}, MajorCrops: []string{"Rice", "Wheat", "Maize", "Sugarcane"}, CurrentSeason: "Rabi", HarvestPeriod: "March-April", AverageRainfall: 1176, Coordinates: domain.Coordinates{Lat: 25.0961, Lng: 85.3131}},
	}
}
