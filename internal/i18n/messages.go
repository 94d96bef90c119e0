package i18n

import "fmt"

// Screen titles, keyed by logical screen name.
var screenTitles = map[string]Text{
	"home":          {Ar: "الرئيسية", En: "Home"},
	"farmer":        {Ar: "التشخيص بالذكاء الاصطناعي", En: "AI Diagnosis"},
	"shop":          {Ar: "المتجر الزراعي", En: "Agri-Store"},
	"chat":          {Ar: "المساعد الذكي", En: "AI Assistant"},
	"profile":       {Ar: "الملف الشخصي", En: "Profile"},
	"tips":          {Ar: "نصائح زراعية", En: "Farming Tips"},
	"diseases":      {Ar: "دليل الأمراض", En: "Disease Info"},
	"cropInfo":      {Ar: "معلومات المحصول", En: "Crop Information"},
	"notifications": {Ar: "الإشعارات", En: "Notifications"},
	"merchant":      {Ar: "لوحة تحكم التاجر", En: "Merchant Dashboard"},
	"history":       {Ar: "سجل التشخيص", En: "Diagnosis History"},
	"auth":          {Ar: "تسجيل الدخول", En: "Login"},
}

// ScreenTitle returns the localized title for a logical screen name, or the
// raw name when no title is registered.
func ScreenTitle(screen string, loc Locale) string {
	if t, ok := screenTitles[screen]; ok {
		return t.In(loc)
	}

	return screen
}

// Fixed user-facing messages.
var (
	MsgProfileUpdated  = Text{Ar: "تم تحديث الملف الشخصي بنجاح!", En: "Profile updated successfully!"}
	MsgPasswordChanged = Text{Ar: "تم تغيير كلمة المرور بنجاح!", En: "Password changed successfully!"}
	MsgAccountDeleted  = Text{Ar: "تم حذف الحساب.", En: "Account deleted."}
	MsgLoggedOut       = Text{Ar: "تم تسجيل الخروج.", En: "Logged out."}

	MsgGuestPromptTitle   = Text{Ar: "ميزة للمسجلين فقط", En: "Registered Users Only"}
	MsgGuestPromptBody    = Text{Ar: "يجب عليك تسجيل الدخول للمتابعة.", En: "You must log in to continue."}
	MsgGuestPromptConfirm = Text{Ar: "تسجيل الدخول", En: "Login"}

	MsgNewOrderTitle        = Text{Ar: "لديك طلب جديد!", En: "New Order Received!"}
	MsgProductApprovedTitle = Text{Ar: "تمت الموافقة على منتجك!", En: "Product Approved!"}

	// MsgChatFallback is returned as the reply text when the advisor call
	// fails; the chat endpoint never surfaces an error status for this.
	MsgChatFallback = Text{
		Ar: "عذرًا، حدث خطأ أثناء محاولة التواصل مع الخبير. يرجى المحاولة مرة أخرى.",
		En: "Sorry, something went wrong while reaching the advisor. Please try again.",
	}
)

// NewOrderMessage renders the merchant-facing body of an order notification.
func NewOrderMessage(loc Locale, farmerName, productName string, quantity int) string {
	if loc == LocaleEnglish {
		return fmt.Sprintf("Farmer %s has ordered %d of %q.", farmerName, quantity, productName)
	}

	return fmt.Sprintf("قام المزارع %s بطلب منتج \"%s\" بكمية %d.", farmerName, productName, quantity)
}

// ProductApprovedMessage renders the merchant-facing body of a moderation
// approval notification.
func ProductApprovedMessage(loc Locale, productName string) string {
	if loc == LocaleEnglish {
		return fmt.Sprintf("Congratulations! Your product %q has been approved and is now live in the shop.", productName)
	}

	return fmt.Sprintf("تهانينا! تمت الموافقة على منتجك \"%s\" وهو الآن معروض في المتجر.", productName)
}
