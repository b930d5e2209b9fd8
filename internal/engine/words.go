// internal/engine/words.go
package engine

// WordPair is one round's pair of close-but-different everyday words. Which
// side plays as the legit word is re-rolled every round.
type WordPair struct {
	Legit string
	Clone string
}

var wordPairs = []WordPair{
	{Legit: "Cat", Clone: "Dog"},
	{Legit: "Coffee", Clone: "Tea"},
	{Legit: "Beach", Clone: "Pool"},
	{Legit: "Pizza", Clone: "Souvlaki"},
	{Legit: "Gasoline", Clone: "Diesel"},
	{Legit: "Apple", Clone: "Pear"},
	{Legit: "Chair", Clone: "Stool"},
	{Legit: "Book", Clone: "Notebook"},
	{Legit: "Bicycle", Clone: "Scooter"},
	{Legit: "Rain", Clone: "Snow"},
	{Legit: "Soap", Clone: "Shampoo"},
	{Legit: "Phone", Clone: "Tablet"},
	{Legit: "Television", Clone: "Radio"},
	{Legit: "Chicken", Clone: "Fish"},
	{Legit: "Sugar", Clone: "Salt"},
	{Legit: "Bus", Clone: "Tram"},
	{Legit: "Photo", Clone: "Video"},
	{Legit: "Car", Clone: "Train"},
	{Legit: "Swimsuit", Clone: "Shorts"},
	{Legit: "Table", Clone: "Desk"},
	{Legit: "Glass", Clone: "Straw"},
	{Legit: "Hat", Clone: "Beanie"},
	{Legit: "Beer", Clone: "Wine"},
	{Legit: "Fridge", Clone: "Freezer"},
	{Legit: "Dryer", Clone: "Washing machine"},
	{Legit: "Lamp", Clone: "Candle"},
	{Legit: "Guitar", Clone: "Bouzouki"},
	{Legit: "Umbrella", Clone: "Raincoat"},
	{Legit: "Orange", Clone: "Tangerine"},
	{Legit: "Shoes", Clone: "Slippers"},
	{Legit: "Tap", Clone: "Shower"},
	{Legit: "Sheet", Clone: "Blanket"},
	{Legit: "Garden", Clone: "Park"},
	{Legit: "Movie", Clone: "Series"},
	{Legit: "Pencil case", Clone: "Handbag"},
	{Legit: "Fork", Clone: "Spoon"},
	{Legit: "Pencil", Clone: "Pen"},
	{Legit: "Plank", Clone: "Shelf"},
	{Legit: "Ice cream", Clone: "Slushie"},
	{Legit: "Blouse", Clone: "Shirt"},
	{Legit: "Tree", Clone: "Bush"},
	{Legit: "Candy", Clone: "Chocolate"},
	{Legit: "Oven", Clone: "Stovetop"},
	{Legit: "Road", Clone: "Sidewalk"},
	{Legit: "Cafe", Clone: "Bar"},
	{Legit: "Painting", Clone: "Mirror"},
	{Legit: "Lemonade", Clone: "Cola"},
	{Legit: "Yogurt", Clone: "Milk"},
	{Legit: "Pen", Clone: "Marker"},
	{Legit: "Trousers", Clone: "Shorts"},
	{Legit: "Puppy", Clone: "Kitten"},
	{Legit: "Brioche", Clone: "Cake"},
	{Legit: "Banana", Clone: "Pineapple"},
	{Legit: "Puffer jacket", Clone: "Coat"},
	{Legit: "Lemon", Clone: "Lime"},
	{Legit: "Sea", Clone: "Lake"},
	{Legit: "Lion", Clone: "Tiger"},
	{Legit: "Shark", Clone: "Crocodile"},
	{Legit: "Owl", Clone: "Hawk"},
}

// WordPairCount is how many distinct pairs a single lobby can play through
// before StartGame reports exhaustion.
func WordPairCount() int {
	return len(wordPairs)
}
