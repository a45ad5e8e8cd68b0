package model

// FamilyModel merepresentasikan satu kartu keluarga (KK) di tabel families.
// Kolom disability & putus_sekolah adalah flag turunan dari anggota dan
// dihitung ulang lewat service.RecomputeDerivedFlags setiap mutasi anggota.
type FamilyModel struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KK           string `gorm:"type:char(16);unique;not null" json:"kk" validate:"required,len=16,numeric"`
	Address      string `gorm:"type:varchar(200)" json:"address"`
	RT           string `gorm:"type:varchar(5)" json:"rt"`
	RW           string `gorm:"type:varchar(5);index" json:"rw" validate:"required"`
	KB           string `gorm:"type:varchar(20)" json:"kb"`
	StatusHamil  bool   `gorm:"not null;default:false" json:"status_hamil"`
	Disability   bool   `gorm:"not null;default:false" json:"disability"`
	PutusSekolah bool   `gorm:"not null;default:false" json:"putus_sekolah"`

	Members []PersonModel `gorm:"foreignKey:FamilyID;references:KK" json:"members,omitempty"`
}

func (FamilyModel) TableName() string {
	return "families"
}

// Metode KB yang dikenal, urutannya dipakai untuk vektor hitung /api/kelompok-kb
// (slot 0 selalu 0, slot 1..8 mengikuti urutan di bawah).
const (
	KBTradisional = "KB Tradisional"
	KBKondom      = "Kondom"
	KBPil         = "Pil"
	KBSuntik      = "Suntik"
	KBImplan      = "Implan"
	KBIUD         = "IUD"
	KBMOW         = "MOW"
	KBMOP         = "MOP"
)

var KBMethods = []string{
	KBTradisional,
	KBKondom,
	KBPil,
	KBSuntik,
	KBImplan,
	KBIUD,
	KBMOW,
	KBMOP,
}
