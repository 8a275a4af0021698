package i18n

// translations maps message key → language code → format string.
// Format verbs follow fmt.Sprintf conventions.
var translations = map[string]map[Language]string{

	// ─── Navigation ──────────────────────────────────────────────────────────
	"nav.partnerships": {
		English: "Partnerships",
		French:  "Partenariats",
		Arabic:  "الشراكات",
	},

	// ─── Partner detail: states ──────────────────────────────────────────────
	"partner.loading": {
		English: "Loading...",
		French:  "Chargement...",
		Arabic:  "جار التحميل...",
	},
	"partner.notFound": {
		English: "Partner not found",
		French:  "Partenaire introuvable",
		Arabic:  "الشريك غير موجود",
	},
	"partner.notFoundDesc": {
		English: "The partner you are looking for does not exist or is no longer available.",
		French:  "Le partenaire que vous recherchez n'existe pas ou n'est plus disponible.",
		Arabic:  "الشريك الذي تبحث عنه غير موجود أو لم يعد متاحًا.",
	},
	"partner.backToPartnerships": {
		English: "Back to partnerships",
		French:  "Retour aux partenariats",
		Arabic:  "العودة إلى الشراكات",
	},
	// %s = partner identifier
	"partner.defaultName": {
		English: "Partner %s",
		French:  "Partenaire %s",
		Arabic:  "الشريك %s",
	},

	// ─── Partner detail: hero ────────────────────────────────────────────────
	"partner.founded": {
		English: "Founded",
		French:  "Fondée en",
		Arabic:  "تأسست",
	},
	"partner.headquarters": {
		English: "Headquarters",
		French:  "Siège",
		Arabic:  "المقر الرئيسي",
	},
	"partner.partnershipSince": {
		English: "Partner since",
		French:  "Partenaire depuis",
		Arabic:  "شريك منذ",
	},
	"partner.visitWebsite": {
		English: "Visit website",
		French:  "Visiter le site",
		Arabic:  "زيارة الموقع",
	},

	// ─── Partner detail: about ───────────────────────────────────────────────
	"partner.aboutTitle": {
		English: "About",
		French:  "À propos de",
		Arabic:  "حول",
	},
	"partner.externalLinks": {
		English: "External Links",
		French:  "Liens externes",
		Arabic:  "روابط خارجية",
	},
	"partner.galleryTitle": {
		English: "Gallery",
		French:  "Galerie",
		Arabic:  "معرض الصور",
	},
	"partner.gallerySubtitle": {
		English: "A glimpse of our collaboration",
		French:  "Un aperçu de notre collaboration",
		Arabic:  "لمحة عن تعاوننا",
	},
	// %s = partner name
	"partner.bannerAlt": {
		English: "%s banner",
		French:  "Bannière %s",
		Arabic:  "لافتة %s",
	},

	// ─── Partner detail: call to action ──────────────────────────────────────
	"partner.readyToPartner": {
		English: "Ready to partner with us?",
		French:  "Prêt à devenir partenaire ?",
		Arabic:  "هل أنت مستعد للشراكة معنا؟",
	},
	"partner.readyToPartnerDesc": {
		English: "Let's build something meaningful together.",
		French:  "Construisons ensemble quelque chose qui compte.",
		Arabic:  "لنبنِ معًا شيئًا ذا قيمة.",
	},
	"partner.startConversation": {
		English: "Start a conversation",
		French:  "Démarrer une conversation",
		Arabic:  "ابدأ محادثة",
	},
	"partner.exploreMore": {
		English: "Discover the other organisations we work with.",
		French:  "Découvrez les autres organisations avec lesquelles nous travaillons.",
		Arabic:  "اكتشف المنظمات الأخرى التي نعمل معها.",
	},
	"partner.viewAllPartners": {
		English: "View all partners",
		French:  "Voir tous les partenaires",
		Arabic:  "عرض جميع الشركاء",
	},

	// ─── Contact ─────────────────────────────────────────────────────────────
	"contact.email": {
		English: "Email",
		French:  "E-mail",
		Arabic:  "البريد الإلكتروني",
	},
	"contact.phone": {
		English: "Phone",
		French:  "Téléphone",
		Arabic:  "الهاتف",
	},
	"contact.location": {
		English: "Location",
		French:  "Adresse",
		Arabic:  "الموقع",
	},
}
