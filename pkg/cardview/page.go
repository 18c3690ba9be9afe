// Package cardview kartvizit kaydını stil-bağımsız bir sayfa yapısına
// dönüştüren kompozisyon motorudur: bölüm registry'si, şablon kataloğu
// ve premium erişim kontrolü burada yaşar. Paket saf fonksiyonlardan
// oluşur; ağ, veritabanı veya başka bir yan etki içermez.
package cardview

// Bilinen şablon kimlikleri. Katalog bu kümenin dışındaki her seçimi
// TemplateMinimal'e düşürür.
const (
	TemplateMinimal      = "minimal"
	TemplateModern       = "modern"
	TemplateDark         = "dark"
	TemplateProfessional = "professional"
	TemplateCreative     = "creative"
	TemplateElegant      = "elegant"
	TemplateTech         = "tech"
	TemplateGradient     = "gradient"
	TemplateGlass        = "glass"
	TemplatePlayful      = "playful"
	TemplateNeobrutalist = "neobrutalist"
	TemplateMonochrome   = "monochrome"
	TemplateSoftUI       = "softui"
	TemplateLuxe         = "luxe"
	TemplateCyberpunk    = "cyberpunk"
	TemplateRetro        = "retro"
	TemplateBotanical    = "botanical"
	TemplateCompact      = "compact"
	TemplateInsta        = "insta"
	TemplateTerminal     = "terminal"
	TemplateVenura       = "venura"
)

// AllTemplateIDs kataloğun tanıdığı tüm şablonlar, sunum sırasıyla.
var AllTemplateIDs = []string{
	TemplateMinimal, TemplateModern, TemplateDark, TemplateProfessional, TemplateCreative,
	TemplateElegant, TemplateTech, TemplateGradient, TemplateGlass, TemplatePlayful,
	TemplateNeobrutalist, TemplateMonochrome, TemplateSoftUI, TemplateLuxe, TemplateCyberpunk,
	TemplateRetro, TemplateBotanical, TemplateCompact, TemplateInsta, TemplateTerminal,
	TemplateVenura,
}

// LinkAction doğrudan eylem linki (tel:, mailto:, harita vb.) veya
// sosyal ağ ikonu için hedef. Href her zaman güvenli şemalıdır.
type LinkAction struct {
	Channel string // email, phone, whatsapp, website, linkedin, ...
	Label   string
	Href    string
}

// ContentItem bir liste bölümündeki tek kalem (hizmet veya galeri görseli).
type ContentItem struct {
	ItemID      string
	Title       string
	Description string
	Price       string
	ImageURL    string
}

// HourLine çalışma saatleri bölümünün bir satırı. IsToday sadece bir
// görüntüleme ipucudur, veri üzerinde değişiklik yapmaz.
type HourLine struct {
	Day      string
	Open     string
	Close    string
	IsClosed bool
	IsToday  bool
}

// ContentBlock bir bölümün stil-bağımsız içeriğidir. Şablonlar bu
// yapıyı kendi görünümlerine yerleştirir; hangi alanların dolu olduğu
// bölüme bağlıdır.
type ContentBlock struct {
	SectionID   string
	Title       string
	Body        []string // about: paragraflar
	Items       []ContentItem
	Hours       []HourLine
	MapEmbedURL string
	MapAddress  string
}

// Page bir kartvizitin render edilmiş halidir. Görsel skin bilgisi
// (Skin, DarkMode, ShowBanner) view katmanına ipucu olarak taşınır;
// markup üretimi bu pakette yapılmaz.
type Page struct {
	TemplateID   string
	Skin         string // view katmanındaki CSS sınıf adı
	DarkMode     bool
	ShowBanner   bool
	PrimaryColor string

	FullName    string
	JobTitle    string
	CompanyName string
	Bio         string
	Tags        []string

	ProfileImageURL string
	BannerImageURL  string
	LogoImageURL    string

	Actions []LinkAction // birincil eylemler: ara, e-posta, whatsapp, konum
	Socials []LinkAction // mevcut kanallara ait ikon linkleri
	Blocks  []ContentBlock
}
