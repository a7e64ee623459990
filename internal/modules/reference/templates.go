package reference

// expenseTemplates returns the per-category expense templates, amounts in cents
func expenseTemplates() map[string][]Template {
	return map[string][]Template{
		"Groceries": {
			{"Whole Foods Market", 4500, 15000},
			{"Trader Joe's", 3000, 8000},
			{"Safeway", 2500, 12000},
			{"Costco", 8000, 25000},
			{"Target - Groceries", 2000, 6000},
			{"Walmart Grocery", 3000, 10000},
			{"Kroger", 2500, 9000},
			{"Aldi", 2000, 5000},
			{"Sprouts Farmers Market", 3500, 8000},
			{"Local Farmers Market", 1500, 4000},
		},
		"Restaurants": {
			{"Chipotle Mexican Grill", 1200, 2500},
			{"Olive Garden", 2500, 6000},
			{"Chili's", 2000, 5000},
			{"Panera Bread", 1000, 2000},
			{"Subway", 800, 1500},
			{"McDonald's", 600, 1500},
			{"Thai Palace Restaurant", 1500, 3500},
			{"Sushi House", 2000, 5000},
			{"Italian Bistro", 3000, 7000},
			{"Local Diner", 1200, 2500},
			{"Pizza Hut", 1500, 3500},
			{"Taco Bell", 500, 1200},
			{"Five Guys", 1200, 2000},
			{"Cheesecake Factory", 3000, 7000},
		},
		"Coffee & Snacks": {
			{"Starbucks", 450, 800},
			{"Dunkin'", 300, 600},
			{"Peet's Coffee", 400, 700},
			{"Local Coffee Shop", 350, 650},
			{"7-Eleven", 200, 800},
			{"Vending Machine", 150, 300},
		},
		"Gas": {
			{"Shell Gas Station", 3500, 7000},
			{"Chevron", 3000, 6500},
			{"Exxon", 3200, 6800},
			{"BP Gas Station", 3000, 6000},
			{"Costco Gas", 2800, 5500},
			{"76 Gas Station", 3100, 6200},
		},
		"Public Transit": {
			{"Metro Card Reload", 2000, 10000},
			{"Bus Fare", 250, 500},
			{"Uber", 800, 3500},
			{"Lyft", 750, 3200},
			{"Train Ticket", 500, 2500},
			{"Airport Shuttle", 1500, 3000},
		},
		"Parking": {
			{"Downtown Parking Garage", 1000, 3000},
			{"Airport Parking", 2000, 8000},
			{"Street Parking Meter", 200, 800},
			{"Event Parking", 1500, 4000},
			{"Monthly Parking Pass", 10000, 25000},
		},
		"Rent/Mortgage": {
			{"Monthly Rent Payment", 120000, 250000},
			{"Mortgage Payment", 150000, 350000},
		},
		"Maintenance": {
			{"Plumber - Leak Repair", 15000, 40000},
			{"Electrician Service", 10000, 30000},
			{"HVAC Maintenance", 8000, 20000},
			{"Lawn Care Service", 5000, 15000},
			{"House Cleaning Service", 8000, 20000},
			{"Handyman Services", 5000, 15000},
			{"Pest Control", 10000, 25000},
		},
		"Insurance": {
			{"Renters Insurance", 2000, 5000},
			{"Home Insurance Premium", 8000, 20000},
		},
		"Utilities": {
			{"Electric Bill - Power Co", 8000, 20000},
			{"Gas Bill - Utility Co", 4000, 12000},
			{"Water & Sewer Bill", 3000, 8000},
			{"Internet - Comcast", 5000, 10000},
			{"Phone Bill - Verizon", 4000, 12000},
			{"Trash Collection", 2000, 5000},
		},
		"Entertainment": {
			{"Netflix Subscription", 1599, 2299},
			{"Spotify Premium", 999, 1599},
			{"Movie Theater", 1200, 3500},
			{"Concert Tickets", 5000, 20000},
			{"Bowling Alley", 2000, 5000},
			{"Mini Golf", 1500, 3000},
			{"Escape Room", 2500, 4000},
			{"Museum Admission", 1500, 3000},
			{"Disney+ Subscription", 799, 1399},
			{"HBO Max", 1599, 1599},
			{"Video Game Purchase", 2000, 7000},
			{"Steam Game Sale", 500, 3000},
			{"Book Purchase", 1000, 2500},
		},
		"Shopping": {
			{"Amazon.com", 1500, 15000},
			{"Target", 2000, 10000},
			{"Walmart", 1500, 8000},
			{"Best Buy - Electronics", 5000, 50000},
			{"IKEA", 5000, 30000},
			{"Home Depot", 3000, 20000},
			{"Macy's", 4000, 15000},
			{"Nordstrom", 5000, 25000},
			{"Old Navy", 2000, 8000},
			{"Nike Store", 5000, 15000},
			{"Apple Store", 10000, 150000},
			{"Bed Bath & Beyond", 3000, 10000},
			{"Etsy", 2000, 8000},
		},
		"Healthcare": {
			{"CVS Pharmacy", 1000, 5000},
			{"Walgreens", 800, 4000},
			{"Doctor Visit Copay", 2000, 5000},
			{"Dentist - Checkup", 5000, 15000},
			{"Eye Exam", 5000, 15000},
			{"Prescription Medication", 1000, 10000},
			{"Urgent Care Visit", 5000, 15000},
			{"Lab Work", 2000, 10000},
			{"Physical Therapy", 3000, 10000},
		},
		"Other": {
			{"ATM Withdrawal", 2000, 20000},
			{"Bank Fee", 500, 3500},
			{"Gift - Birthday", 2000, 10000},
			{"Charity Donation", 2000, 20000},
			{"Pet Supplies - PetSmart", 2000, 8000},
			{"Vet Visit", 5000, 30000},
			{"Dry Cleaning", 1500, 4000},
			{"Haircut", 2000, 6000},
			{"Gym Membership", 2500, 6000},
			{"Office Supplies", 1000, 5000},
		},
	}
}
