// Package content holds the static reference dataset: the crop
// encyclopedia, farming tips, disease catalog and home carousel, in both
// locales. Arabic is the source text; English entries are summaries.
package content

import (
	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/repository"
	"mazraa/internal/i18n"
)

type catalog struct{}

// New builds the static content provider.
func New() repository.ContentProvider {
	return &catalog{}
}

type localizedCrop struct {
	id          string
	name        i18n.Text
	description i18n.Text
	imageURL    string
	farmingInfo i18n.Text
}

var crops = []localizedCrop{
	{
		id:       "coffee",
		name:     i18n.Text{Ar: "البُن اليمني", En: "Yemeni Coffee"},
		imageURL: "https://images.unsplash.com/photo-1599819122046-e5d78b87137a?q=80&w=1974&auto=format&fit=crop",
		description: i18n.Text{
			Ar: "يُعتبر البن اليمني من أجود أنواع البن في العالم، ويتميز بنكهته الفريدة والغنية. يُزرع في المرتفعات الجبلية ويحتاج إلى عناية خاصة للحفاظ على جودته.",
			En: "Yemeni coffee is among the finest in the world, prized for its rich, distinctive flavor. It grows in mountain highlands and needs dedicated care to preserve its quality.",
		},
		farmingInfo: i18n.Text{
			Ar: "يُفضل زراعته في تربة جيدة التصريف وعلى ارتفاعات تتراوح بين 1000 و 2000 متر. يتطلب ريًا منتظمًا وحماية من الصقيع.",
			En: "Best planted in well-drained soil at 1000-2000m elevation. Requires regular irrigation and frost protection.",
		},
	},
	{
		id:       "almonds",
		name:     i18n.Text{Ar: "اللوز اليمني", En: "Yemeni Almonds"},
		imageURL: "https://images.unsplash.com/photo-1627522149838-895c6604924c?q=80&w=1964&auto=format&fit=crop",
		description: i18n.Text{
			Ar: "اللوز من المحاصيل الهامة في اليمن، خاصة في المناطق الجبلية. يتميز بقيمته الغذائية العالية ويستخدم في العديد من الأطباق والحلويات اليمنية.",
			En: "Almonds are an important highland crop in Yemen, valued for their nutrition and used widely in Yemeni dishes and sweets.",
		},
		farmingInfo: i18n.Text{
			Ar: "شجرة اللوز تتحمل الجفاف نسبيًا وتنمو جيدًا في المناخات المعتدلة. تحتاج إلى تقليم دوري لزيادة الإنتاج.",
			En: "Almond trees tolerate drought fairly well and thrive in temperate climates. Periodic pruning raises yields.",
		},
	},
	{
		id:       "pomegranate",
		name:     i18n.Text{Ar: "الرمان الصعدي", En: "Saada Pomegranate"},
		imageURL: "https://images.unsplash.com/photo-1631704253683-45a822603487?q=80&w=1964&auto=format&fit=crop",
		description: i18n.Text{
			Ar: "الرمان اليمني، وخاصة الصعدي، مشهور بحجمه الكبير وحلاوة طعمه. يُعد مصدرًا غنيًا بمضادات الأكسدة والفيتامينات.",
			En: "Yemeni pomegranate, especially from Saada, is famous for its size and sweetness. It is rich in antioxidants and vitamins.",
		},
		farmingInfo: i18n.Text{
			Ar: "ينمو الرمان في مختلف أنواع التربة ولكنه يفضل التربة العميقة والخصبة. يحتاج إلى شمس كاملة وري منتظم خلال فترة الإثمار.",
			En: "Pomegranate grows in most soils but prefers deep, fertile ground. It needs full sun and regular irrigation while fruiting.",
		},
	},
	{
		id:       "tomatoes",
		name:     i18n.Text{Ar: "الطماطم", En: "Tomatoes"},
		imageURL: "https://images.unsplash.com/photo-1598512752271-33f913a5af13?q=80&w=1974&auto=format&fit=crop",
		description: i18n.Text{
			Ar: "تُعتبر الطماطم من الخضروات الأساسية في المطبخ اليمني وتُزرع في مناطق مختلفة من البلاد. تدخل في تحضير معظم الأطباق اليومية.",
			En: "Tomatoes are a staple of Yemeni cooking and are grown across the country, featuring in most daily dishes.",
		},
		farmingInfo: i18n.Text{
			Ar: "تحتاج الطماطم إلى تربة غنية بالمواد العضوية وإلى دعم النباتات بأعمدة لتنمو بشكل جيد. يجب الانتباه لمكافحة الآفات مثل ذبابة الفاكهة.",
			En: "Tomatoes need organically rich soil and staking. Watch for pests such as fruit flies.",
		},
	},
}

type localizedTip struct {
	id      string
	title   i18n.Text
	content i18n.Text
}

var tips = []localizedTip{
	{
		id:    "tip1",
		title: i18n.Text{Ar: "الري بالتنقيط", En: "Drip Irrigation"},
		content: i18n.Text{
			Ar: "استخدام نظام الري بالتنقيط يوفر ما يصل إلى 70% من المياه مقارنة بالري بالغمر، ويقلل من نمو الأعشاب الضارة.",
			En: "Drip irrigation saves up to 70% of water compared with flood irrigation and suppresses weed growth.",
		},
	},
	{
		id:    "tip2",
		title: i18n.Text{Ar: "التسميد العضوي", En: "Organic Fertilization"},
		content: i18n.Text{
			Ar: "استخدام الكمبوست والمخلفات الحيوانية كسماد عضوي يحسن من خصوبة التربة وبنيتها، ويزود النباتات بالعناصر الغذائية بشكل مستدام.",
			En: "Compost and animal manure improve soil fertility and structure, feeding plants sustainably.",
		},
	},
	{
		id:    "tip3",
		title: i18n.Text{Ar: "الدورة الزراعية", En: "Crop Rotation"},
		content: i18n.Text{
			Ar: "تناوب المحاصيل في نفس الحقل من موسم لآخر يساعد على كسر دورة الآفات والأمراض ويحافظ على توازن العناصر الغذائية في التربة.",
			En: "Rotating crops between seasons breaks pest and disease cycles and keeps soil nutrients balanced.",
		},
	},
	{
		id:    "tip4",
		title: i18n.Text{Ar: "مكافحة الآفات الطبيعية", En: "Natural Pest Control"},
		content: i18n.Text{
			Ar: "تشجيع وجود الأعداء الطبيعيين للآفات مثل حشرة \"الدعسوقة\" التي تتغذى على المن، يقلل من الحاجة لاستخدام المبيدات الكيميائية.",
			En: "Encouraging natural predators such as ladybugs, which feed on aphids, reduces the need for chemical pesticides.",
		},
	},
	{
		id:    "tip5",
		title: i18n.Text{Ar: "فحص المحصول الدوري", En: "Regular Crop Inspection"},
		content: i18n.Text{
			Ar: "تفقد النباتات بانتظام يساعد على اكتشاف الأمراض والآفات في مراحلها المبكرة، مما يجعل السيطرة عليها أسهل وأكثر فعالية.",
			En: "Inspecting plants regularly catches diseases and pests early, when they are easiest to control.",
		},
	},
}

type localizedDisease struct {
	id          string
	name        i18n.Text
	description i18n.Text
	treatment   i18n.Text
}

var diseases = []localizedDisease{
	{
		id:   "dis1",
		name: i18n.Text{Ar: "البياض الدقيقي", En: "Powdery Mildew"},
		description: i18n.Text{
			Ar: "مرض فطري يظهر كطبقة بيضاء تشبه الدقيق على الأوراق والسيقان. يضعف النبات ويقلل من عملية البناء الضوئي.",
			En: "A fungal disease that coats leaves and stems in a flour-like white layer, weakening the plant and reducing photosynthesis.",
		},
		treatment: i18n.Text{
			Ar: "استخدام مبيدات فطرية تحتوي على الكبريت أو بيكربونات البوتاسيوم. يمكن استخدام زيت النيم كعلاج عضوي. يجب إزالة الأجزاء المصابة والتخلص منها.",
			En: "Apply sulfur or potassium-bicarbonate fungicides; neem oil works as an organic option. Remove and discard infected parts.",
		},
	},
	{
		id:   "dis2",
		name: i18n.Text{Ar: "صدأ الأوراق", En: "Leaf Rust"},
		description: i18n.Text{
			Ar: "يظهر على شكل بقع أو بثرات برتقالية أو بنية اللون على الأوراق. يسبب تساقط الأوراق المبكر ويضعف النبات بشكل عام.",
			En: "Shows as orange or brown pustules on leaves, causing early leaf drop and general weakening.",
		},
		treatment: i18n.Text{
			Ar: "زراعة أصناف مقاومة للمرض. استخدام مبيدات فطرية نحاسية. ضمان تهوية جيدة بين النباتات لتقليل الرطوبة.",
			En: "Plant resistant varieties, use copper fungicides, and space plants for airflow to reduce humidity.",
		},
	},
	{
		id:   "dis3",
		name: i18n.Text{Ar: "اللفحة المتأخرة (على الطماطم والبطاطس)", En: "Late Blight (Tomato & Potato)"},
		description: i18n.Text{
			Ar: "مرض فطري خطير يسبب بقعًا داكنة على الأوراق والسيقان، وتلفًا سريعًا للثمار. ينتشر بسرعة في الطقس الرطب.",
			En: "A serious fungal disease causing dark lesions on leaves and stems and rapid fruit rot. Spreads fast in wet weather.",
		},
		treatment: i18n.Text{
			Ar: "الرش الوقائي بالمبيدات الفطرية الجهازية. التخلص الفوري من النباتات المصابة. تجنب ري الأوراق مباشرة.",
			En: "Spray preventively with systemic fungicides, remove infected plants immediately, and avoid wetting foliage.",
		},
	},
	{
		id:   "dis4",
		name: i18n.Text{Ar: "تجعد أوراق الخوخ", En: "Peach Leaf Curl"},
		description: i18n.Text{
			Ar: "يصيب أشجار الخوخ واللوز، ويسبب تجعدًا وتشوهًا في الأوراق الجديدة وتغير لونها إلى الأحمر أو الأصفر.",
			En: "Affects peach and almond trees, curling and deforming new leaves and turning them red or yellow.",
		},
		treatment: i18n.Text{
			Ar: "رش الأشجار بمبيد فطري نحاسي في فترة السكون (قبل تفتح البراعم). إزالة الأوراق المصابة لتقليل انتشار العدوى.",
			En: "Spray a copper fungicide during dormancy, before bud break, and remove infected leaves to limit spread.",
		},
	},
}

type localizedSlide struct {
	cropID   string
	image    string
	title    i18n.Text
	subtitle i18n.Text
}

var slides = []localizedSlide{
	{
		cropID:   "coffee",
		image:    "https://images.unsplash.com/photo-1599819122046-e5d78b87137a?q=80&w=1974&auto=format&fit=crop",
		title:    i18n.Text{Ar: "البُن اليمني", En: "Yemeni Coffee"},
		subtitle: i18n.Text{Ar: "جودة عالمية تبدأ من أرضنا", En: "World-class quality, grown at home"},
	},
	{
		cropID:   "almonds",
		image:    "https://images.unsplash.com/photo-1627522149838-895c6604924c?q=80&w=1964&auto=format&fit=crop",
		title:    i18n.Text{Ar: "اللوز", En: "Almonds"},
		subtitle: i18n.Text{Ar: "غذاء الطبيعة من مزارع اليمن", En: "Nature's food from Yemeni farms"},
	},
	{
		cropID:   "pomegranate",
		image:    "https://images.unsplash.com/photo-1631704253683-45a822603487?q=80&w=1964&auto=format&fit=crop",
		title:    i18n.Text{Ar: "الرمان", En: "Pomegranate"},
		subtitle: i18n.Text{Ar: "ثمار مباركة من أرض طيبة", En: "Blessed fruit from good land"},
	},
	{
		cropID:   "tomatoes",
		image:    "https://images.unsplash.com/photo-1598512752271-33f913a5af13?q=80&w=1974&auto=format&fit=crop",
		title:    i18n.Text{Ar: "الطماطم", En: "Tomatoes"},
		subtitle: i18n.Text{Ar: "أساس المائدة اليمنية", En: "The staple of the Yemeni table"},
	},
}

func (c *catalog) Crops(loc i18n.Locale) []*entity.CropInfo {
	out := make([]*entity.CropInfo, 0, len(crops))
	for _, crop := range crops {
		out = append(out, crop.localize(loc))
	}

	return out
}

func (c *catalog) CropByID(loc i18n.Locale, id string) *entity.CropInfo {
	for _, crop := range crops {
		if crop.id == id {
			return crop.localize(loc)
		}
	}

	return nil
}

func (c *catalog) Tips(loc i18n.Locale) []*entity.FarmingTip {
	out := make([]*entity.FarmingTip, 0, len(tips))
	for _, tip := range tips {
		out = append(out, &entity.FarmingTip{
			ID:      tip.id,
			Title:   tip.title.In(loc),
			Content: tip.content.In(loc),
		})
	}

	return out
}

func (c *catalog) Diseases(loc i18n.Locale) []*entity.DiseaseInfo {
	out := make([]*entity.DiseaseInfo, 0, len(diseases))
	for _, d := range diseases {
		out = append(out, &entity.DiseaseInfo{
			ID:          d.id,
			Name:        d.name.In(loc),
			Description: d.description.In(loc),
			Treatment:   d.treatment.In(loc),
		})
	}

	return out
}

func (c *catalog) Slides(loc i18n.Locale) []*entity.CarouselSlide {
	out := make([]*entity.CarouselSlide, 0, len(slides))
	for _, s := range slides {
		out = append(out, &entity.CarouselSlide{
			CropID:   s.cropID,
			Image:    s.image,
			Title:    s.title.In(loc),
			Subtitle: s.subtitle.In(loc),
		})
	}

	return out
}

func (lc localizedCrop) localize(loc i18n.Locale) *entity.CropInfo {
	return &entity.CropInfo{
		ID:          lc.id,
		Name:        lc.name.In(loc),
		Description: lc.description.In(loc),
		ImageURL:    lc.imageURL,
		FarmingInfo: lc.farmingInfo.In(loc),
	}
}
