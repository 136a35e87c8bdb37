package models

// DefaultDocument dokumen bawaan yang selalu tersedia saat remote store
// belum dikonfigurasi dan cache lokal kosong. Pengguna tidak boleh pernah
// melihat halaman tanpa dokumen.
func DefaultDocument() ContentDocument {
	return ContentDocument{
		GroomName:       "Pupud Pranata",
		BrideName:       "Hani Rahmawati",
		GroomParents:    "Putra dari Bpk. Ahmad Pranata & Ibu Sri Lestari",
		BrideParents:    "Putri dari Bpk. Dedi Rahmat & Ibu Euis Komariah",
		GroomInstagram:  "https://instagram.com/pupudpranata",
		BrideInstagram:  "https://instagram.com/hanirahmawati",
		CoupleShortName: "Hani & Pupud",
		WeddingDate:     "2026-02-14T08:00:00+07:00",
		TurutMengundang: []string{
			"Kel. Bpk. H. Maman Suryaman",
			"Kel. Bpk. Ujang Sutisna",
		},
		Assets: map[string]string{
			"heroImage":    "https://images.unsplash.com/photo-1519741497674-611481863552",
			"splashBg":     "https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6",
			"floralCorner": "https://images.unsplash.com/photo-1490750967868-88aa4486c946",
		},
		Gallery: []GalleryItem{
			{ID: 1, URL: "https://images.unsplash.com/photo-1511285560929-80b456fea0bc", Alt: "Foto prewedding 1"},
			{ID: 2, URL: "https://images.unsplash.com/photo-1583939003579-730e3918a45a", Alt: "Foto prewedding 2"},
		},
		Events: []Event{
			{
				Title:        "Akad Nikah",
				Date:         "2026-02-14",
				Time:         "08.00 - 10.00 WIB",
				Location:     "Masjid Agung Al-Ikhlas",
				Address:      "Jl. Raya Cibadak No. 12, Sukabumi",
				MapsURL:      "https://maps.google.com/?q=Masjid+Agung+Al-Ikhlas",
				MapsEmbedURL: "https://www.google.com/maps/embed?pb=masjid-agung",
			},
			{
				Title:        "Resepsi",
				Date:         "2026-02-14",
				Time:         "11.00 - Selesai",
				Location:     "Kediaman Mempelai Wanita",
				Address:      "Kp. Babakan RT 02/04, Sukabumi",
				MapsURL:      "https://maps.google.com/?q=Kp+Babakan+Sukabumi",
				MapsEmbedURL: "https://www.google.com/maps/embed?pb=kediaman",
			},
		},
		BankAccounts: []BankAccount{
			{BankName: "BCA", AccountNumber: "1234567890", AccountHolder: "Hani Rahmawati"},
		},
		Wishlist: []WishlistItem{
			{Name: "Peralatan Dapur", Description: "Set panci dan wajan"},
		},
		AudioURL: "https://cdn.pixabay.com/audio/2023/07/30/beautiful-piano.mp3",
	}
}

// DefaultGuestName sapaan generik untuk tamu tanpa link personal.
// Tamu dengan nama ini tidak boleh mengirim ke buku tamu.
const DefaultGuestName = "Tamu Undangan"

// DefaultMessageTemplateContent isi template pesan bawaan generator.
const DefaultMessageTemplateContent = "Kepada Yth. [Nama Tamu]\n\n" +
	"Tanpa mengurangi rasa hormat, perkenankan kami mengundang " +
	"Bapak/Ibu/Saudara/i untuk hadir di acara pernikahan kami.\n\n" +
	"Detail undangan dapat dibuka pada tautan berikut:\n[Link Undangan]\n\n" +
	"Merupakan suatu kehormatan bagi kami apabila " +
	"Bapak/Ibu/Saudara/i berkenan hadir.\n\nTerima kasih."

// SampleCatalog enam desain contoh yang dipakai storefront saat katalog
// dari remote maupun cache sama-sama kosong.
func SampleCatalog() []InvitationTemplate {
	return []InvitationTemplate{
		{ID: "tpl-001", Name: "Rustic Java", Price: 99000, Category: "rustic", PreviewImageURL: "https://images.unsplash.com/photo-1469371670807-013ccf25f16a", DemoURL: "/undangan/hani-pupud", IsPopular: true},
		{ID: "tpl-002", Name: "Royal Minang", Price: 149000, Category: "traditional", PreviewImageURL: "https://images.unsplash.com/photo-1532712938310-34cb3982ef74"},
		{ID: "tpl-003", Name: "Modern Sakura", Price: 129000, Category: "modern", PreviewImageURL: "https://images.unsplash.com/photo-1522673607200-164d1b6ce486", IsPopular: true},
		{ID: "tpl-004", Name: "Elegant Gold", Price: 179000, Category: "elegant", PreviewImageURL: "https://images.unsplash.com/photo-1519225421980-715cb0215aed"},
		{ID: "tpl-005", Name: "Floral Garden", Price: 119000, Category: "floral", PreviewImageURL: "https://images.unsplash.com/photo-1460364157752-926555421a7e"},
		{ID: "tpl-006", Name: "Simple Ivory", Price: 79000, Category: "minimalist", PreviewImageURL: "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8"},
	}
}
