// Package content holds the site's compiled-in marketing data: portfolio
// projects, pricing tiers, reviews, and FAQ entries. There is no CMS or
// database; editing this file is how content changes ship.
package content

import "github.com/lyrixdigital/lyrix-api/internal/i18n"

// text is a translated string pair.
type text struct {
	EN string
	ES string
}

func (t text) in(lang i18n.Lang) string {
	if lang == i18n.ES && t.ES != "" {
		return t.ES
	}
	return t.EN
}

// Project is a portfolio entry.
type Project struct {
	ID          string   `json:"id"`
	Client      string   `json:"client"`
	Year        string   `json:"year"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type projectRecord struct {
	id          string
	client      string
	year        string
	typ         text
	description text
	liveURL     string
	liveURLES   string
	images      []string
}

// PricingTier is one of the three service packages.
type PricingTier struct {
	Title       string   `json:"title"`
	CodeName    string   `json:"codeName"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
}

type tierRecord struct {
	title       text
	codeName    string
	price       string
	features    []text
	highlighted bool
}

// Review is a client testimonial.
type Review struct {
	Author string `json:"author"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
}

type reviewRecord struct {
	author string
	role   text
	quote  text
}

// FAQItem is a question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type faqRecord struct {
	question text
	answer   text
}

var projectRecords = []projectRecord{
	{
		id:     "#001",
		client: "Sweet Vacations",
		year:   "2026",
		typ:    text{EN: "Booking Platform", ES: "Plataforma de Reservas"},
		description: text{
			EN: "Vacation rental site with apartment grid, amenities showcase and direct booking CTAs.",
			ES: "Sitio de alquiler vacacional con cuadricula de apartamentos, amenidades y reservas directas.",
		},
		liveURL:   "https://sweet-vacations.vercel.app/en",
		liveURLES: "https://sweet-vacations.vercel.app/es",
		images: []string{
			"/SweetVacations_Hero.png",
			"/SweetVacations_Apartments_Grid.png",
			"/SweetVacations_FAQ.png",
		},
	},
	{
		id:     "#002",
		client: "Unidine Co.",
		year:   "2025",
		typ:    text{EN: "Restaurant Site", ES: "Sitio de Restaurante"},
		description: text{
			EN: "Dark-themed restaurant presence with signature dishes, menu and photo gallery.",
			ES: "Presencia de restaurante con platos insignia, menu y galeria fotografica.",
		},
		liveURL: "https://restaurant-psi-fawn.vercel.app/",
		images: []string{
			"/Unidine_hero.png",
			"/Unidine_menu.png",
			"/Unidine_photo_gallery.png",
		},
	},
	{
		id:     "#003",
		client: "Juan Plumbing Co.",
		year:   "2025",
		typ:    text{EN: "Local Service", ES: "Servicio Local"},
		description: text{
			EN: "Lead-focused landing for a plumbing business with quote requests and service areas.",
			ES: "Landing orientada a leads para plomeria con solicitudes de presupuesto y zonas de servicio.",
		},
	},
}

var tierRecords = []tierRecord{
	{
		title:    text{EN: "Landing Page", ES: "Landing Page"},
		codeName: "lyrix.init",
		price:    "$1K–$3K",
		features: []text{
			{EN: "Single-page architecture", ES: "Arquitectura de una pagina"},
			{EN: "Responsive design system", ES: "Sistema de diseno responsivo"},
			{EN: "Contact capture module", ES: "Modulo de captura de contacto"},
			{EN: "Launch in 2 weeks", ES: "Lanzamiento en 2 semanas"},
		},
	},
	{
		title:    text{EN: "Authority System", ES: "Sistema de Autoridad"},
		codeName: "lyrix.core",
		price:    "$3K–$5K",
		features: []text{
			{EN: "Multi-section OS experience", ES: "Experiencia OS multi-seccion"},
			{EN: "Bilingual content (EN/ES)", ES: "Contenido bilingue (EN/ES)"},
			{EN: "Portfolio and pricing modules", ES: "Modulos de portafolio y precios"},
			{EN: "Lead notification pipeline", ES: "Pipeline de notificacion de leads"},
			{EN: "SEO and performance pass", ES: "Optimizacion SEO y de rendimiento"},
			{EN: "Priority support window", ES: "Ventana de soporte prioritario"},
		},
		highlighted: true,
	},
	{
		title:    text{EN: "Full Production", ES: "Produccion Completa"},
		codeName: "lyrix.max",
		price:    "$5K–$10K",
		features: []text{
			{EN: "Everything in Authority System", ES: "Todo lo del Sistema de Autoridad"},
			{EN: "Cinematic video module", ES: "Modulo de video cinematico"},
			{EN: "Custom interactive sections", ES: "Secciones interactivas a medida"},
			{EN: "Content strategy session", ES: "Sesion de estrategia de contenido"},
			{EN: "Managed maintenance option", ES: "Opcion de mantenimiento gestionado"},
			{EN: "Analytics instrumentation", ES: "Instrumentacion de analitica"},
		},
	},
}

var reviewRecords = []reviewRecord{
	{
		author: "Carolina M.",
		role:   text{EN: "Owner, Sweet Vacations", ES: "Propietaria, Sweet Vacations"},
		quote: text{
			EN: "Bookings doubled within the first month. The site feels like nothing else in our market.",
			ES: "Las reservas se duplicaron el primer mes. El sitio no se parece a nada en nuestro mercado.",
		},
	},
	{
		author: "Luis R.",
		role:   text{EN: "Manager, Unidine Co.", ES: "Gerente, Unidine Co."},
		quote: text{
			EN: "They treated our menu like a product launch. Fast, precise, zero hand-holding needed.",
			ES: "Trataron nuestro menu como un lanzamiento de producto. Rapido y preciso.",
		},
	},
	{
		author: "Juan P.",
		role:   text{EN: "Founder, Juan Plumbing Co.", ES: "Fundador, Juan Plumbing Co."},
		quote: text{
			EN: "Quote requests started arriving the week we launched. Best money I've spent on the business.",
			ES: "Las solicitudes de presupuesto llegaron la misma semana del lanzamiento.",
		},
	},
}

var faqRecords = []faqRecord{
	{
		question: text{EN: "How long does a project take?", ES: "¿Cuanto tarda un proyecto?"},
		answer: text{
			EN: "A landing page ships in about two weeks; a full multi-section system in four to six.",
			ES: "Una landing se entrega en unas dos semanas; un sistema completo en cuatro a seis.",
		},
	},
	{
		question: text{EN: "Do you handle maintenance after launch?", ES: "¿Se encargan del mantenimiento tras el lanzamiento?"},
		answer: text{
			EN: "Your choice: managed mode where we operate the site, or handover mode with full documentation.",
			ES: "Tu eliges: modo gestionado donde operamos el sitio, o modo de entrega con documentacion completa.",
		},
	},
	{
		question: text{EN: "What is the cinematic module?", ES: "¿Que es el modulo cinematico?"},
		answer: text{
			EN: "An optional produced video piece integrated into the hero and campaign assets.",
			ES: "Una pieza de video producida, integrada en el hero y los recursos de campana.",
		},
	},
	{
		question: text{EN: "Is the site bilingual?", ES: "¿El sitio es bilingue?"},
		answer: text{
			EN: "Every build ships with English and Spanish content out of the box.",
			ES: "Cada proyecto incluye contenido en ingles y espanol desde el inicio.",
		},
	},
}

// Projects returns the portfolio localized for lang.
func Projects(lang i18n.Lang) []Project {
	out := make([]Project, 0, len(projectRecords))
	for _, r := range projectRecords {
		live := r.liveURL
		if lang == i18n.ES && r.liveURLES != "" {
			live = r.liveURLES
		}
		out = append(out, Project{
			ID:          r.id,
			Client:      r.client,
			Year:        r.year,
			Type:        r.typ.in(lang),
			Description: r.description.in(lang),
			LiveURL:     live,
			Images:      r.images,
		})
	}
	return out
}

// Pricing returns the three tiers localized for lang.
func Pricing(lang i18n.Lang) []PricingTier {
	out := make([]PricingTier, 0, len(tierRecords))
	for _, r := range tierRecords {
		features := make([]string, 0, len(r.features))
		for _, f := range r.features {
			features = append(features, f.in(lang))
		}
		out = append(out, PricingTier{
			Title:       r.title.in(lang),
			CodeName:    r.codeName,
			Price:       r.price,
			Features:    features,
			Highlighted: r.highlighted,
		})
	}
	return out
}

// Reviews returns testimonials localized for lang.
func Reviews(lang i18n.Lang) []Review {
	out := make([]Review, 0, len(reviewRecords))
	for _, r := range reviewRecords {
		out = append(out, Review{
			Author: r.author,
			Role:   r.role.in(lang),
			Quote:  r.quote.in(lang),
		})
	}
	return out
}

// FAQ returns the knowledge-base entries localized for lang.
func FAQ(lang i18n.Lang) []FAQItem {
	out := make([]FAQItem, 0, len(faqRecords))
	for _, r := range faqRecords {
		out = append(out, FAQItem{
			Question: r.question.in(lang),
			Answer:   r.answer.in(lang),
		})
	}
	return out
}
