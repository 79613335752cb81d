package schema

import "github.com/bilanco-dev/bilanco/internal/model"

// Group codes of the built-in chart. Ratio computation and the standard
// reports address groups through these.
const (
	CodeAktif          = "aktif"
	CodePasif          = "pasif"
	CodeDonenVarliklar = "donenVarliklar"
	CodeDuranVarliklar = "duranVarliklar"
	CodeKisaVadeli     = "kisaVadeliYabanciKaynaklar"
	CodeUzunVadeli     = "uzunVadeliYabanciKaynaklar"
	CodeOzkaynaklar    = "ozkaynaklar"
)

// Default returns the built-in TFRS balance-sheet chart. Items whose label
// carries "(-)" are contra positions and enter totals with their negative sign.
func Default() *Schema {
	s, err := New(defaultAktif(), defaultPasif())
	if err != nil {
		panic(err) // the built-in chart is checked by tests
	}
	return s
}

func defaultAktif() *model.Node {
	return model.Group(CodeAktif, "AKTİF",
		model.Group(CodeDonenVarliklar, "Dönen Varlıklar",
			model.Item("nakitVeNakitBenzerleri", "Nakit ve Nakit Benzerleri"),
			model.Item("gayrimenkulProjeleriNakitHesaplari", "Gayrimenkul Projeleri Kapsamında Açılan Nakit Hesapları"),
			model.Item("finansalYatirimlar", "Finansal Yatırımlar"),
			model.Item("teminataVerilenFinansalVarliklar", "Teminata Verilen Finansal Varlıklar"),
			model.Item("ticariAlacaklarDonen", "Ticari Alacaklar"),
			model.Item("finansSektoruFaaliyetlerindenAlacaklarDonen", "Finans Sektörü Faaliyetlerinden Alacaklar"),
			model.Item("tcmbHesabi", "Türkiye Cumhuriyet Merkez Bankası Hesabı"),
			model.Item("digerAlacaklarDonen", "Diğer Alacaklar"),
			model.Item("musteriSozlesmelerindenDoganVarliklarDonen", "Müşteri Sözleşmelerinden Doğan Varlıklar"),
			model.Item("imtiyazSozlesmelerineIliskinFinansalVarliklarDonen", "İmtiyaz Sözleşmelerine İlişkin Finansal Varlıklar"),
			model.Item("turevAraclarDonen", "Türev Araçlar"),
			model.Item("stoklar", "Stoklar"),
			model.Item("projeHalindekiStoklar", "Proje Halindeki Stoklar"),
			model.Item("canliVarliklarDonen", "Canlı Varlıklar"),
			model.Item("pesinOdenmisGiderlerDonen", "Peşin Ödenmiş Giderler"),
			model.Item("ertelenmisSigortacilikUretimGiderleri", "Ertelenmiş Sigortacılık Üretim Giderleri"),
			model.Item("cariDonemVergisiyleIlgiliVarliklarDonen", "Cari Dönem Vergisiyle İlgili Varlıklar"),
			model.Item("nakdiDisiSerbestKullanilabilirTeminatlarDonen", "Nakdi Dışı Serbest Kullanılabilir Teminatlar"),
			model.Item("digerDonenVarliklar", "Diğer Dönen Varlıklar"),
			model.Item("satisAmaciylaEldeTutulanDuranVarliklar", "Satış Amacıyla Elde Tutulan Duran Varlıklar"),
			model.Item("ortaklaraDagitilmakUzereEldeTutulanDuranVarliklar", "Ortaklara Dağıtılmak Üzere Elde Tutulan Duran Varlıklar"),
		),
		model.Group(CodeDuranVarliklar, "Duran Varlıklar",
			model.Item("finansalYatirimlarDuran", "Finansal Yatırımlar"),
			model.Item("istirakIsOrtaklikBagliOrtaklikYatirimlari", "İştirakler, İş Ortaklıkları ve Bağlı Ortaklıklardaki Yatırımlar"),
			model.Item("ticariAlacaklar", "Ticari Alacaklar"),
			model.Item("finansSektoruFaaliyetlerindenAlacaklarDuran", "Finans Sektörü Faaliyetlerinden Alacaklar"),
			model.Item("digerAlacaklarDuran", "Diğer Alacaklar"),
			model.Item("musteriSozlesmelerindenDoganVarliklarDuran", "Müşteri Sözleşmelerinden Doğan Varlıklar"),
			model.Item("imtiyazSozlesmelerineIliskinFinansalVarliklarDuran", "İmtiyaz Sözleşmelerine İlişkin Finansal Varlıklar"),
			model.Item("turevAraclarDuran", "Türev Araçlar"),
			model.Item("stoklarDuran", "Stoklar"),
			model.Item("ozkaynakYontemiyleDegerlenenYatirimlar", "Özkaynak Yöntemiyle Değerlenen Yatırımlar"),
			model.Item("canliVarliklarDuran", "Canlı Varlıklar"),
			model.Item("yatirimAmacliGayrimenkuller", "Yatırım Amaçlı Gayrimenkuller"),
			model.Item("projeHalindekiYatirimAmacliGayrimenkuller", "Proje Halindeki Yatırım Amaçlı Gayrimenkuller"),
			model.Item("maddiDuranVarliklar", "Maddi Duran Varlıklar"),
			model.Item("kullanimHakkiVarliklari", "Kullanım Hakkı Varlıkları"),
			model.Item("maddiOlmayanDuranVarliklar", "Maddi Olmayan Duran Varlıklar"),
			model.Item("pesinOdenmisGiderlerDuran", "Peşin Ödenmiş Giderler"),
			model.Item("ertelenmisVergiVarligiDuran", "Ertelenmiş Vergi Varlığı"),
			model.Item("cariDonemVergisiyleIlgiliDuranVarliklar", "Cari Dönem Vergisiyle İlgili Duran Varlıklar"),
			model.Item("nakdiDisiSerbestKullanilabilirTeminatlarDuran", "Nakdi Dışı Serbest Kullanılabilir Teminatlar"),
			model.Item("digerDuranVarliklar", "Diğer Duran Varlıklar"),
		),
	)
}

func defaultPasif() *model.Node {
	return model.Group(CodePasif, "PASİF",
		model.Group(CodeKisaVadeli, "Kısa Vadeli Yükümlülükler",
			model.Item("finansalBorclarKV", "Finansal Borçlar"),
			model.Item("digerFinansalYukumluluklerKV", "Diğer Finansal Yükümlülükler"),
			model.Item("ticariBorclarKV", "Ticari Borçlar"),
			model.Item("finansSektoruFaaliyetlerindenBorclarKV", "Finans Sektörü Faaliyetlerinden Borçlar"),
			model.Item("calisanlaraSaglananFaydalarBorclarKV", "Çalışanlara Sağlanan Faydalar Kapsamında Borçlar"),
			model.Item("digerBorclarKV", "Diğer Borçlar"),
			model.Item("musteriSozlesmelerindenDoganYukumluluklerKV", "Müşteri Sözleşmelerinden Doğan Yükümlülükler"),
			model.Item("ozkaynakYontemiyleDegerlenenYatirimlardanYukumluluklerKV", "Özkaynak Yöntemiyle Değerlenen Yatırımlardan Yükümlülükler"),
			model.Item("turevAraclarKV", "Türev Araçlar"),
			model.Item("devletTesvikYardimKV", "Devlet Teşvik ve Yardımları"),
			model.Item("ertelenmisGelirlerKV", "Ertelenmiş Gelirler"),
			model.Item("donemKariVergiYukumluluguKV", "Dönem Karı Vergi Yükümlülüğü"),
			model.Item("kisaVadeliKarsiliklar", "Kısa Vadeli Karşılıklar"),
			model.Item("digerKisaVadeliYukumlulukler", "Diğer Kısa Vadeli Yükümlülükler"),
			model.Item("satisAmacliSiniflandirilanVarlikGruplarinaIliskinYukumlulukler", "Satış Amaçlı Sınıflandırılan Varlık Gruplarına İlişkin Yükümlülükler"),
			model.Item("ortaklaraDagitilmakUzereEldeTutulanVarlikGruplarinaIliskinYukumlulukler", "Ortaklara Dağıtılmak Üzere Elde Tutulan Varlık Gruplarına İlişkin Yükümlülükler"),
		),
		model.Group(CodeUzunVadeli, "Uzun Vadeli Yükümlülükler",
			model.Item("finansalBorclarUV", "Finansal Borçlar"),
			model.Item("digerFinansalYukumluluklerUV", "Diğer Finansal Yükümlülükler"),
			model.Item("ticariBorclarUV", "Ticari Borçlar"),
			model.Item("finansSektoruFaaliyetlerindenBorclarUV", "Finans Sektörü Faaliyetlerinden Borçlar"),
			model.Item("calisanlaraSaglananFaydalarBorclarUV", "Çalışanlara Sağlanan Faydalar Kapsamında Borçlar"),
			model.Item("digerBorclarUV", "Diğer Borçlar"),
			model.Item("musteriSozlesmelerindenDoganYukumluluklerUV", "Müşteri Sözleşmelerinden Doğan Yükümlülükler"),
			model.Item("ozkaynakYontemiyleDegerlenenYatirimlardanYukumluluklerUV", "Özkaynak Yöntemiyle Değerlenen Yatırımlardan Yükümlülükler"),
			model.Item("turevAraclarUV", "Türev Araçlar"),
			model.Item("devletTesvikYardimUV", "Devlet Teşvik ve Yardımları"),
			model.Item("ertelenmisGelirlerUV", "Ertelenmiş Gelirler"),
			model.Item("cariDonemVergisiyleIlgiliBorclarUV", "Cari Dönem Vergisiyle İlgili Borçlar"),
			model.Item("ertelenmisVergiYukumlulugu", "Ertelenmiş Vergi Yükümlülüğü"),
			model.Item("digerUzunVadeliYukumlulukler", "Diğer Uzun Vadeli Yükümlülükler"),
		),
		model.Group(CodeOzkaynaklar, "Özkaynaklar",
			model.Item("anaOrtakligaAitOzkaynaklar", "Ana Ortaklığa Ait Özkaynaklar"),
			model.Item("odenmisSermaye", "Ödenmiş Sermaye"),
			model.Item("sermayeDuzeltmeFarklari", "Sermaye Düzeltme Farkları"),
			model.Item("birlesmeDengeletirmeHesabi", "Birleşme Dengeleştirme Hesabı"),
			model.Item("paySahipleriIlaveSermayeKatkilari", "Pay Sahiplerinin İlave Sermaye Katkıları"),
			model.Item("sermayeAvansi", "Sermaye Avansı"),
			model.ContraItem("geriAlinmisPaylar", "Geri Alınmış Paylar (-)"),
			model.ContraItem("karsilikliIstirakSermayeDuzeltmesi", "Karşılıklı İştirak Sermaye Düzeltmesi (-)"),
			model.Item("paylaraIliskinPrimlerIskontolar", "Paylara İlişkin Primler (iskontolar)"),
			model.Item("ortakKontroleTabiBirlesmeEtkisi", "Ortak Kontrole Tabi Teşebbüs veya İşletmeleri İçeren Birleşmelerin Etkisi"),
			model.ContraItem("payBazliOdemeler", "Pay Bazlı Ödemeler (-)"),
			model.Item("yenidenSiniflandirilmayacakBirikmisDigerKapsamliGelirGider", "Kar veya Zararda Yeniden Sınıflandırılmayacak Birikmiş Diğer Kapsamlı Gelirler (Giderler)"),
			model.Item("yenidenSiniflandirilacakBirikmisDigerKapsamliGelirGider", "Kar veya Zararda Yeniden Sınıflandırılacak Birikmiş Diğer Kapsamlı Gelirler (Giderler)"),
			model.Item("kardanAyrilanKisitlanmisYedekler", "Kardan Ayrılan Kısıtlanmış Yedekler"),
			model.Item("digerYedekler", "Diğer Yedekler"),
			model.Item("gecmisYillarKarZarari", "Geçmiş Yıllar Kar/Zararları"),
			model.Item("donemKariZarari", "Dönem Net Karı"),
			model.Item("kontrolGucuOlmayanPaylar", "Azınlık Payları"),
			model.Item("hedgeDahilNetYabanciParaPozisyonu", "Hedge Dahil Net Yabancı Para Pozisyonu"),
		),
	)
}
