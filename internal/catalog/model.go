package catalog

type Service struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Features    []string `yaml:"features" json:"features"`
	Price       string   `yaml:"price" json:"price"`
}

type TeamMember struct {
	ID         int      `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Role       string   `yaml:"role" json:"role"`
	Bio        string   `yaml:"bio" json:"bio"`
	Initials   string   `yaml:"initials" json:"initials"`
	Expertise  []string `yaml:"expertise" json:"expertise"`
	Education  string   `yaml:"education" json:"education"`
	Experience string   `yaml:"experience" json:"experience"`
	LinkedIn   string   `yaml:"linkedin" json:"linkedin"`
}

type Address struct {
	Street  string `yaml:"street" json:"street"`
	City    string `yaml:"city" json:"city"`
	State   string `yaml:"state" json:"state"`
	ZipCode string `yaml:"zipCode" json:"zipCode"`
	Country string `yaml:"country" json:"country"`
}

type SocialMedia struct {
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	Twitter  string `yaml:"twitter" json:"twitter"`
	GitHub   string `yaml:"github" json:"github"`
}

type BusinessHours struct {
	Monday    string `yaml:"monday" json:"monday"`
	Tuesday   string `yaml:"tuesday" json:"tuesday"`
	Wednesday string `yaml:"wednesday" json:"wednesday"`
	Thursday  string `yaml:"thursday" json:"thursday"`
	Friday    string `yaml:"friday" json:"friday"`
	Saturday  string `yaml:"saturday" json:"saturday"`
	Sunday    string `yaml:"sunday" json:"sunday"`
}

type ContactInfo struct {
	Company       string        `yaml:"company" json:"company"`
	Email         string        `yaml:"email" json:"email"`
	Phone         string        `yaml:"phone" json:"phone"`
	Location      string        `yaml:"location" json:"location"`
	Address       Address       `yaml:"address" json:"address"`
	SocialMedia   SocialMedia   `yaml:"socialMedia" json:"socialMedia"`
	BusinessHours BusinessHours `yaml:"businessHours" json:"businessHours"`
	ResponseTime  string        `yaml:"responseTime" json:"responseTime"`
}

// Document is the shape of the seed file.
type Document struct {
	Services []Service    `yaml:"services"`
	Team     []TeamMember `yaml:"team"`
	Contact  ContactInfo  `yaml:"contact"`
}
