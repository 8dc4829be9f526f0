package maps

import "NaviDemo-App/internal/domain/model"

// landmarkNamePools カテゴリごとのランドマーク名称プール
// 基準地点（バンガロール）に合わせた実在風の名称を使用する
var landmarkNamePools = map[model.LandmarkCategory][]string{
	model.CategoryGasStation: {
		"Indian Oil Fuel Station",
		"HP Petrol Pump",
		"Shell Select",
		"Bharat Petroleum",
	},
	model.CategoryATM: {
		"SBI ATM",
		"HDFC Bank ATM",
		"ICICI Bank ATM",
		"Axis Bank ATM",
	},
	model.CategoryRestaurant: {
		"MTR Restaurant",
		"Vidyarthi Bhavan",
		"Truffles",
		"Empire Restaurant",
		"CTR Malleshwaram",
	},
	model.CategoryHotel: {
		"The Leela Palace",
		"Taj West End",
		"ITC Gardenia",
		"The Oberoi",
	},
	model.CategoryHospital: {
		"Manipal Hospital",
		"Apollo Hospital",
		"Fortis Hospital",
		"St. John's Medical College",
	},
	model.CategoryPharmacy: {
		"Apollo Pharmacy",
		"MedPlus",
		"Wellness Forever",
		"Netmeds Store",
	},
	model.CategoryShopping: {
		"UB City Mall",
		"Phoenix Marketcity",
		"Orion Mall",
		"Commercial Street Bazaar",
	},
	model.CategoryTouristAttraction: {
		"Lalbagh Botanical Garden",
		"Cubbon Park",
		"Bangalore Palace",
		"Vidhana Soudha",
	},
	model.CategoryParking: {
		"MG Road Multi-level Parking",
		"Brigade Road Parking Lot",
		"Garuda Mall Parking",
		"Central Parking Services",
	},
}

// landmarkAmenities カテゴリごとに付与しうる設備・サービスの候補
var landmarkAmenities = map[model.LandmarkCategory][]string{
	model.CategoryGasStation:        {"air_filling", "car_wash", "convenience_store"},
	model.CategoryATM:               {"24h", "cash_deposit", "wheelchair_access"},
	model.CategoryRestaurant:        {"wifi", "parking", "outdoor_seating", "takeaway"},
	model.CategoryHotel:             {"wifi", "pool", "parking", "breakfast"},
	model.CategoryHospital:          {"emergency", "pharmacy", "ambulance", "parking"},
	model.CategoryPharmacy:          {"24h", "home_delivery", "consultation"},
	model.CategoryShopping:          {"parking", "food_court", "wifi", "cinema"},
	model.CategoryTouristAttraction: {"guided_tours", "parking", "restrooms", "gift_shop"},
	model.CategoryParking:           {"covered", "security", "ev_charging"},
}

// namePoolFor カテゴリに対応する名称プールを取得する
// 未定義のカテゴリはレストランのプールにフォールバックする
func namePoolFor(category model.LandmarkCategory) []string {
	if pool, ok := landmarkNamePools[category]; ok {
		return pool
	}
	return landmarkNamePools[model.CategoryRestaurant]
}

// amenitiesFor カテゴリに対応する設備候補を取得する
func amenitiesFor(category model.LandmarkCategory) []string {
	if amenities, ok := landmarkAmenities[category]; ok {
		return amenities
	}
	return landmarkAmenities[model.CategoryRestaurant]
}
