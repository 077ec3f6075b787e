package catalog

import "ai-marketplace-api/internal/models"

type priceRange struct {
	Min int
	Max int
}

// PriceRanges are inclusive bounds for generated prices per category.
var PriceRanges = map[models.Category]priceRange{
	models.CategoryAgents:      {Min: 49, Max: 499},
	models.CategoryWorkflows:   {Min: 29, Max: 229},
	models.CategoryAutomations: {Min: 19, Max: 169},
	models.CategoryBots:        {Min: 39, Max: 339},
}

var titlePools = map[models.Category][]string{
	models.CategoryAgents: {
		"AI Customer Service Agent",
		"Sales Assistant Pro",
		"Email Responder AI",
		"Marketing Copy Generator",
		"Data Analysis Agent",
		"Chatbot Builder",
		"Lead Qualifier AI",
		"Social Media Manager",
		"Content Creation Bot",
		"Research Assistant",
		"Booking Agent",
		"Support Ticket Resolver",
		"Compliance Checker",
		"Invoice Processing AI",
		"Document Summarizer",
	},
	models.CategoryWorkflows: {
		"Lead Generation Workflow",
		"Customer Onboarding Flow",
		"Order Processing Automation",
		"Data Sync Workflow",
		"Email Campaign Sequence",
		"Report Generation Flow",
		"Backup Automation",
		"Task Approval Process",
		"Invoice Validation Workflow",
		"Content Publishing Pipeline",
		"Customer Feedback Loop",
		"Inventory Management Flow",
		"Payment Processing Automation",
		"HR Onboarding Workflow",
		"Project Handoff Process",
	},
	models.CategoryAutomations: {
		"Auto Email Responder",
		"Social Media Scheduler",
		"Data Backup Automation",
		"File Sync Tool",
		"Invoice Generator",
		"Report Scheduler",
		"Notification Bot",
		"Task Creator",
		"Calendar Integration",
		"CRM Data Sync",
		"Automated Testing Suite",
		"Deployment Pipeline",
		"Log Rotation Automation",
		"Security Scanner",
		"API Rate Limit Monitor",
	},
	models.CategoryBots: {
		"Discord Community Bot",
		"Slack Notification Bot",
		"Telegram Trading Bot",
		"WhatsApp Business Bot",
		"Twitter Auto-Poster",
		"Reddit Engagement Bot",
		"Instagram DM Responder",
		"Customer Support Bot",
		"Survey Bot",
		"Lead Collection Bot",
		"Appointment Booking Bot",
		"Feedback Collection Bot",
		"Event Coordination Bot",
		"Newsletter Subscription Bot",
		"Product Inquiry Bot",
	},
}

// Shared by every category.
var descriptions = []string{
	"Automate your workflow with this powerful solution that integrates seamlessly with your existing tools.",
	"Boost productivity by 300% with AI-powered automation handles repetitive tasks effortlessly.",
	"Streamline your business processes with intelligent automation reduces manual work significantly.",
	"Transform your operations with this cutting-edge solution designed for modern businesses.",
	"Save hours every week with smart automation that learns and adapts to your needs.",
	"Eliminate manual errors and increase efficiency with our robust automation platform.",
	"Scale your business faster with AI-driven workflows that handle complex operations.",
	"Experience the future of automation with our next-generation solution built for speed.",
	"Optimize your resources and reduce costs with intelligent process automation.",
	"Stay ahead of the competition with AI-powered tools that deliver results.",
	"Supercharge your team with automation that handles the mundane so you can focus on strategy.",
	"Deploy in minutes and see results instantly with our pre-configured workflows.",
	"Built for scale, reliability, and performance - ready for enterprise deployment.",
	"Customizable and flexible solution that adapts to your unique business requirements.",
	"Industry-leading automation trusted by thousands of businesses worldwide.",
}

var tagPools = map[models.Category][]string{
	models.CategoryAgents:      {"AI", "Chatbot", "NLP", "Customer Service", "Automation", "Support", "Sales", "Marketing"},
	models.CategoryWorkflows:   {"Automation", "Integration", "Business Logic", "API", "Data", "Process", "Pipeline", "Efficiency"},
	models.CategoryAutomations: {"Script", "Scheduling", "Tasks", "Backend", "Integration", "Monitoring", "Alerts", "Productivity"},
	models.CategoryBots:        {"Chat", "Social", "Messaging", "Community", "Engagement", "Support", "Marketing", "Automation"},
}

// TagPool returns a copy of the tag pool for a category.
func TagPool(category models.Category) []string {
	pool := tagPools[category]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// TitlePool returns a copy of the title pool for a category.
func TitlePool(category models.Category) []string {
	pool := titlePools[category]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}
