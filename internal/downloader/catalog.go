package downloader

import "strconv"

// Book identifies one Project Gutenberg title available for download:
// its catalog ID (used to build the download URL) and the base name
// its local file is saved under.
type Book struct {
	ID   int
	Name string
}

func (b Book) url() string {
	return "https://www.gutenberg.org/ebooks/" + strconv.Itoa(b.ID) + ".txt.utf-8"
}

func (b Book) filePath(booksDir string) string {
	return booksDir + "/" + b.Name + ".txt"
}

// Catalog is the fixed list of books this analyzer knows how to fetch,
// in the order they are tried when filling a demand shortfall. It is a
// curated subset of the original project's full Gutenberg catalog.
var Catalog = []Book{
	{1661, "Sherlock_Holmes"},
	{1952, "Pride_and_Prejudice"},
	{2701, "Moby_Dick"},
	{174, "Dorian_Gray"},
	{11, "Alice_in_Wonderland"},
	{98, "A_Tale_of_Two_Cities"},
	{514, "Little_Women"},
	{1342, "Jane_Eyre"},
	{5200, "Crime_and_Punishment"},
	{203, "Uncle_Toms_Cabin"},
	{244, "The_Jungle"},
	{25, "Scarlet_Letter"},
	{12, "Through_Looking_Glass"},
	{1947, "Importance_Being_Earnest"},
	{13, "The_Metamorphosis"},
	{14, "Dubliners"},
	{3289, "Mystery_Yellow_Room"},
	{45, "The_Murders_Rue_Morgue"},
	{1265, "The_Moonstone"},
	{1400, "Great_Expectations"},
	{768, "Wuthering_Heights"},
	{84, "Frankenstein"},
	{2852, "Hound_of_Baskervilles"},
	{1259, "Dracula"},
	{158, "Emma"},
	{417, "Mansfield_Park"},
	{121, "Northanger_Abbey"},
	{105, "Persuasion"},
	{28054, "Brothers_Karamazov"},
	{2542, "Oliver_Twist"},
	{2408, "The_Adventures_of_Sherlock_Holmes"},
	{1322, "Middlemarch"},
	{145, "Robinson_Crusoe"},
	{6811, "The_Water_Babies"},
	{19184, "The_Awakening"},
	{2500, "Don_Quixote"},
	{4085, "Anna_Karenina"},
	{6727, "War_and_Peace"},
	{996, "Ulysses"},
	{27827, "The_Great_Gatsby"},
	{2814, "Treasure_Island"},
	{8800, "A_Room_of_Ones_Own"},
	{3839, "Heart_of_Darkness"},
	{288, "Three_Men_in_a_Boat"},
	{4373, "Sons_and_Lovers"},
	{209, "The_Turn_of_the_Screw"},
	{1058, "Vanity_Fair"},
	{766, "David_Copperfield"},
	{967, "Nicholas_Nickleby"},
	{1354, "Bleak_House"},
	{46, "A_Christmas_Carol"},
	{120, "The_Odyssey"},
	{1564, "The_Iliad"},
	{1101, "The_Republic"},
	{108, "Brave_New_World"},
	{1950, "The_Three_Musketeers"},
	{16389, "20000_Leagues_Under_the_Sea"},
	{2680, "Les_Miserables"},
	{101, "The_Time_Machine"},
	{104, "The_War_of_the_Worlds"},
	{2610, "Sense_and_Sensibility"},
}
