package domain

// Prompt template names.
const (
	PromptSystem  = "system"
	PromptQuick   = "quick"
	PromptContext = "context"
)

// defaultPrompts are the built-in prompt templates.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	PromptSystem: `Sen GİB (Gelir İdaresi Başkanlığı) uzmanısın. Türk vergi mevzuatı ve beyanname süreçleri hakkında detaylı ve net bilgiler veriyorsun. TÜM YANITLARINI TÜRKÇE OLARAK VERMELİSİN. İNGİLİZCE KULLANMA! HER SORUYA TAM VE EKSİKSİZ YANIT VER, YARIM BIRAKMA!`,

	PromptQuick: `Yukarıdaki bilgileri kullanarak detaylı ve eksiksiz cevap ver. Yanıtını kesinlikle Türkçe olarak vermelisin, İngilizce kullanma! Tüm adımları eksiksiz açıkla, yarım bırakma!`,

	PromptContext: `Sadece verilen bağlamdaki bilgileri kullanarak doğrudan ve net cevap ver.`,
}

// DefaultPrompt returns the built-in template for name.
func DefaultPrompt(name string) (string, bool) {
	prompt, ok := defaultPrompts[name]
	return prompt, ok
}

// DefaultPromptNames lists every built-in template name.
func DefaultPromptNames() []string {
	return []string{PromptSystem, PromptQuick, PromptContext}
}
