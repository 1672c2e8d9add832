package chatbot

import "fmt"

var greetings = []string{
	"Hello! I'm your MCP chatbot. I can help you with weather, stocks, and news!",
	"Hi there! I'm here to help you get information about weather, stocks, and news.",
	"Welcome! I'm your assistant for real-time information. What would you like to know?",
}

const goodbyeText = "Goodbye! Feel free to come back anytime for more information! 👋"

const helpText = `🤖 **MCP Chatbot Help**

I can help you with:

🌤️ **Weather Information:**
• "What's the weather in [city]?"
• "How's the weather in [city], [country]?"
• "Show me the forecast for [city]"
• "Weather forecast for [city] for 5 days"

📊 **Stock Information:**
• "What's the stock price of [symbol]?"
• "Show me [AAPL/MSFT/GOOGL] stock"
• "Stock price for [symbol]"
• "Search for stocks with [keyword]"

📰 **News Information:**
• "Show me top headlines"
• "Get [technology/business/sports] news"
• "Search for news about [topic]"
• "Latest news from [country]"

💬 **Conversation:**
• "Hello" / "Hi" / "Hey"
• "Help" / "What can you do?"
• "Goodbye" / "Bye"

Try asking me something like:
• "What's the weather in Tokyo?"
• "Show me Apple stock price"
• "Get technology news"`

func fallbacks(query string) []string {
	return []string{
		fmt.Sprintf("I'm not sure I understood '%s'. Try asking me about weather, stocks, or news!", query),
		"I didn't quite catch that. You can ask me about weather in a city, stock prices, or latest news.",
		"Could you rephrase that? I can help with weather, stocks, and news information.",
		"I'm here to help with weather, stocks, and news. Try asking something like 'What's the weather in Tokyo?' or 'Show me Apple stock price'.",
	}
}

// Greetings returns the fixed greeting replies.
func Greetings() []string {
	out := make([]string, len(greetings))
	copy(out, greetings)
	return out
}

// Fallbacks returns the replies used when no handler answered query.
func Fallbacks(query string) []string {
	return fallbacks(query)
}

func HelpText() string { return helpText }

func GoodbyeText() string { return goodbyeText }
