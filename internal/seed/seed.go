package seed

import (
	"log"
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/util"
	"gorm.io/gorm"
)

// Run populates an empty database with demo data covering the request
// lifecycle end to end. A database that already has customers is left
// untouched.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	days := func(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }
	in := func(d time.Duration) *time.Time { t := now.Add(d); return &t }
	at := func(t time.Time) *time.Time { return &t }
	rate := func(v float64) *float64 { return &v }

	return db.Transaction(func(tx *gorm.DB) error {
		customers := []model.Customer{
			{ID: "cust-001", Name: "Anna Lindström", Company: "Volvo Group", Email: "anna.lindstrom@volvo.com", Phone: "+46 70 123 4567", Industry: "Automotive & Manufacturing", ContractType: "premium"},
			{ID: "cust-002", Name: "Erik Johansson", Company: "Spotify", Email: "erik.j@spotify.com", Phone: "+46 70 234 5678", Industry: "Tech / Streaming", ContractType: "standard"},
			{ID: "cust-003", Name: "Maria Karlsson", Company: "SEB", Email: "maria.karlsson@seb.se", Phone: "+46 70 345 6789", Industry: "Finance & Banking", ContractType: "premium"},
			{ID: "cust-004", Name: "Lars Svensson", Company: "Ericsson", Email: "lars.svensson@ericsson.com", Phone: "+46 70 456 7890", Industry: "Telecom & 5G", ContractType: "premium"},
			{ID: "cust-005", Name: "Sofia Bergman", Company: "H&M Group", Email: "sofia.bergman@hm.com", Phone: "+46 70 567 8901", Industry: "Retail & E-commerce", ContractType: "standard"},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		cust001 := "cust-001"
		cust002 := "cust-002"
		cust003 := "cust-003"
		cust004 := "cust-004"
		consultants := []model.Consultant{
			{ID: "cons-001", Name: "Johan Nilsson", Email: "johan.n@consultant.se", Title: "Senior Backend Developer", Skills: util.EncodeList([]string{"python", "java", "docker", "kubernetes", "aws", "sql", "fastapi", "microservices"}), HourlyRate: 950, Status: model.ConsultantAssigned, CurrentCustomerID: &cust001},
			{ID: "cons-002", Name: "Emma Andersson", Email: "emma.a@consultant.se", Title: "Full Stack Developer", Skills: util.EncodeList([]string{"react", "typescript", "node.js", "python", "aws", "postgresql", "graphql"}), HourlyRate: 900, Status: model.ConsultantAvailable},
			{ID: "cons-003", Name: "Oscar Pettersson", Email: "oscar.p@consultant.se", Title: "DevOps / Platform Engineer", Skills: util.EncodeList([]string{"docker", "kubernetes", "terraform", "aws", "azure", "ci/cd", "python", "gitops"}), HourlyRate: 1000, Status: model.ConsultantAssigned, CurrentCustomerID: &cust004},
			{ID: "cons-004", Name: "Linnea Eriksson", Email: "linnea.e@consultant.se", Title: "Data Engineer / Analyst", Skills: util.EncodeList([]string{"python", "spark", "sql", "etl", "aws", "pandas", "power bi", "airflow"}), HourlyRate: 950, Status: model.ConsultantAssigned, CurrentCustomerID: &cust002},
			{ID: "cons-005", Name: "Alexander Berg", Email: "alexander.b@consultant.se", Title: "Senior Frontend Developer", Skills: util.EncodeList([]string{"react", "typescript", "next.js", "vue", "css", "figma", "storybook"}), HourlyRate: 900, Status: model.ConsultantAvailable},
			{ID: "cons-006", Name: "Hanna Ström", Email: "hanna.s@consultant.se", Title: "ML / AI Engineer", Skills: util.EncodeList([]string{"python", "machine learning", "pytorch", "tensorflow", "nlp", "docker", "mlops"}), HourlyRate: 1100, Status: model.ConsultantAvailable},
			{ID: "cons-007", Name: "Viktor Lund", Email: "viktor.l@consultant.se", Title: "Scrum Master / Agile Coach", Skills: util.EncodeList([]string{"scrum", "agile", "projektledning", "jira", "kanban", "SAFe"}), HourlyRate: 850, Status: model.ConsultantAssigned, CurrentCustomerID: &cust003},
			{ID: "cons-008", Name: "Frida Sandberg", Email: "frida.s@consultant.se", Title: "iOS / Mobile Developer", Skills: util.EncodeList([]string{"swift", "ios", "react native", "kotlin", "android", "firebase"}), HourlyRate: 950, Status: model.ConsultantAvailable},
			{ID: "cons-009", Name: "Daniel Öberg", Email: "daniel.o@consultant.se", Title: "Cloud Solutions Architect", Skills: util.EncodeList([]string{"aws", "azure", "gcp", "terraform", "kubernetes", "docker", "networking"}), HourlyRate: 1200, Status: model.ConsultantOnLeave, AvailabilityDate: in(days(30))},
			{ID: "cons-010", Name: "Maja Holmgren", Email: "maja.h@consultant.se", Title: "UX/UI Designer", Skills: util.EncodeList([]string{"ux", "ui", "figma", "user research", "design system", "prototyping"}), HourlyRate: 850, Status: model.ConsultantAvailable},
		}
		if err := tx.Create(&consultants).Error; err != nil {
			return err
		}

		rules := []model.ComplianceRule{
			{Name: "EU Working Time Directive", Description: "Maximum 48 working hours per week including overtime", RuleType: "regulation", Severity: "blocking", Condition: `{"max_weekly_hours": 48}`, IsActive: true},
			{Name: "Minimum Notice Period", Description: "5 business days notice required for new assignments", RuleType: "policy", Severity: "warning", Condition: `{"min_notice_days": 5}`, IsActive: true},
			{Name: "Rate Transparency", Description: "Customer must be informed of applicable rates before assignment starts", RuleType: "contract", Severity: "blocking", Condition: `{"require_rate_approval": true}`, IsActive: true},
			{Name: "Non-Compete Check", Description: "Verify consultant has no conflicting non-compete clauses", RuleType: "contract", Severity: "blocking", Condition: `{"check_non_compete": true}`, IsActive: true},
			{Name: "GDPR Data Processing", Description: "Ensure DPA is signed before consultant handles personal data", RuleType: "regulation", Severity: "blocking", Condition: `{"require_dpa": true}`, IsActive: true},
		}
		if err := tx.Create(&rules).Error; err != nil {
			return err
		}

		users := []model.User{
			{ID: "user-admin", Email: "admin@intelliplan.se", PasswordHash: model.HashPassword("admin123"), FullName: "Admin Intelliplan", Role: model.RoleAdmin, IsActive: true},
			{ID: "user-handler-1", Email: "handler@intelliplan.se", PasswordHash: model.HashPassword("handler123"), FullName: "Sara Lindqvist", Role: model.RoleHandler, IsActive: true},
			{ID: "user-handler-2", Email: "marcus@intelliplan.se", PasswordHash: model.HashPassword("handler123"), FullName: "Marcus Ek", Role: model.RoleHandler, IsActive: true},
			{ID: "user-cust-001", Email: "anna.lindstrom@volvo.com", PasswordHash: model.HashPassword("kund123"), FullName: "Anna Lindström", Role: model.RoleCustomer, CustomerID: &cust001, IsActive: true},
			{ID: "user-cust-002", Email: "erik.j@spotify.com", PasswordHash: model.HashPassword("kund123"), FullName: "Erik Johansson", Role: model.RoleCustomer, CustomerID: &cust002, IsActive: true},
			{ID: "user-cust-003", Email: "maria.karlsson@seb.se", PasswordHash: model.HashPassword("kund123"), FullName: "Maria Karlsson", Role: model.RoleCustomer, CustomerID: &cust003, IsActive: true},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		requests := []model.StaffingRequest{
			{
				ID: "req-001", CustomerID: "cust-001",
				Title:       "Senior Python-utvecklare - Autonomous Driving",
				Description: "Vi söker en erfaren Python-utvecklare för vårt Autonomous Driving-team i Göteborg. Kandidaten ska arbeta med perception pipeline, sensor fusion och realtidsbearbetning av LIDAR/kameradata. Krav på erfarenhet av Docker, Kubernetes samt CI/CD i AWS-miljö. Teamet arbetar agilt i 2-veckors sprintar.",
				RequiredSkills: util.EncodeList([]string{"python", "docker", "kubernetes", "aws", "sql", "fastapi"}),
				NumberOfConsultants: 1, StartDate: at(ago(days(45))), EndDate: at(ago(days(45)).Add(days(180))),
				BudgetMaxHourly: rate(1000), Location: "Göteborg", Priority: model.PriorityHigh,
				Status:    model.RequestStatusCompleted,
				AISummary: "Backend-utveckling med fokus på autonom körning. Hög komplexitet, kräver seniora kompetenser.",
				AICategory: "Backend Development", AIComplexityScore: 0.85, CreatedAt: ago(days(50)),
			},
			{
				ID: "req-002", CustomerID: "cust-002",
				Title:       "Data Engineer - Recommendations Pipeline",
				Description: "Spotify söker en Data Engineer till vårt Recommendations-team. Du kommer bygga och optimera datapipelines i Spark/Airflow som driver vår musikrekommendationsmotor. Arbetet involverar hantering av petabyte-skala data, A/B-testning och nära samarbete med ML-teamet.",
				RequiredSkills: util.EncodeList([]string{"python", "spark", "sql", "etl", "aws", "pandas"}),
				NumberOfConsultants: 1, StartDate: at(ago(days(20))), EndDate: at(ago(days(20)).Add(days(120))),
				BudgetMaxHourly: rate(1000), Location: "Stockholm", RemoteOk: true, Priority: model.PriorityMedium,
				Status:    model.RequestStatusInProgress,
				AISummary: "Data engineering med fokus på rekommendationssystem. Kräver erfarenhet av storskalig databearbetning.",
				AICategory: "Data Engineering", AIComplexityScore: 0.78, CreatedAt: ago(days(30)),
			},
			{
				ID: "req-003", CustomerID: "cust-003",
				Title:       "Cloud Architect - Digital Banking Platform",
				Description: "SEB driver en storskalig molnmigration av vår kärnbankplattform. Vi behöver en senior Cloud Architect som kan designa och implementera en multi-region AWS-arkitektur med fokus på säkerhet, compliance och 99.99% tillgänglighet. Kandidaten ska ha erfarenhet av finansiella system och PCI DSS.",
				RequiredSkills: util.EncodeList([]string{"aws", "azure", "terraform", "kubernetes", "docker", "networking"}),
				NumberOfConsultants: 1, StartDate: in(days(10)), EndDate: in(days(200)),
				BudgetMaxHourly: rate(1300), Location: "Stockholm", Priority: model.PriorityUrgent,
				Status:    model.RequestStatusAssessed,
				AISummary: "Strategisk molnmigrering för bankplattform. Kräver seniora cloud- och säkerhetskompetenser. Hög budget motiverar topkandidater.",
				AICategory: "Cloud Architecture", AIComplexityScore: 0.92, CreatedAt: ago(days(5)),
			},
			{
				ID: "req-004", CustomerID: "cust-004",
				Title:       "DevOps Engineer - 5G Core Network",
				Description: "Ericsson söker en DevOps-ingenjör till vårt 5G Core-team. Arbetet omfattar CI/CD-pipelines, Kubernetes-kluster i edge-miljöer, och automatiserad testning. Du behöver gedigen erfarenhet av container-orkestration och Infrastructure as Code.",
				RequiredSkills: util.EncodeList([]string{"docker", "kubernetes", "terraform", "aws", "ci/cd", "python", "gitops"}),
				NumberOfConsultants: 1, StartDate: in(days(5)), EndDate: in(days(150)),
				BudgetMaxHourly: rate(1050), Location: "Linköping", RemoteOk: true, Priority: model.PriorityHigh,
				Status:    model.RequestStatusInProgress,
				AISummary: "DevOps för 5G Core. Kritisk infrastruktur med höga krav på tillförlitlighet och automation.",
				AICategory: "DevOps / Infrastructure", AIComplexityScore: 0.88, CreatedAt: ago(days(12)),
			},
			{
				ID: "req-005", CustomerID: "cust-005",
				Title:       "React-utvecklare - E-commerce Replatform",
				Description: "H&M genomgår en stor re-platforming av vår e-handelssite. Vi behöver 2 erfarna React/TypeScript-utvecklare som kan arbeta med vår nya Next.js-baserade plattform. Fokus på prestanda, tillgänglighet (WCAG 2.1 AA) och mobilupplevelse.",
				RequiredSkills: util.EncodeList([]string{"react", "typescript", "next.js", "css", "figma"}),
				NumberOfConsultants: 2, StartDate: in(days(15)), EndDate: in(days(180)),
				BudgetMaxHourly: rate(950), Location: "Stockholm", RemoteOk: true, Priority: model.PriorityMedium,
				Status:    model.RequestStatusSubmitted,
				AISummary: "Frontend-utveckling för e-handelsplattform. Kräver stark React/Next.js-kompetens med fokus på tillgänglighet.",
				AICategory: "Frontend Development", AIComplexityScore: 0.65, CreatedAt: ago(6 * time.Hour),
			},
			{
				ID: "req-006", CustomerID: "cust-001",
				Title:       "ML Engineer - Predictive Maintenance",
				Description: "Volvo Cars söker en ML Engineer för att bygga predictive maintenance-modeller för vår nya elbilsplattform. Arbetet innebär att analysera sensordata från bilar i fält, träna modeller för komponentlivslängd och integrera inferens i vårt edge computing-system.",
				RequiredSkills: util.EncodeList([]string{"python", "machine learning", "pytorch", "docker", "mlops"}),
				NumberOfConsultants: 1, StartDate: in(days(20)), EndDate: in(days(240)),
				BudgetMaxHourly: rate(1150), Location: "Göteborg", Priority: model.PriorityHigh,
				Status:    model.RequestStatusAssessed,
				AISummary: "ML-utveckling för prediktivt underhåll. Kräver djup ML-kompetens och erfarenhet av produktionssystem.",
				AICategory: "Machine Learning / AI", AIComplexityScore: 0.90, CreatedAt: ago(days(3)),
			},
			{
				ID: "req-007", CustomerID: "cust-003",
				Title:       "Scrum Master - Agile Transformation",
				Description: "SEB söker en erfaren Scrum Master / Agile Coach för att leda den agila transformationen av vår Private Banking-division. Du ska coacha 3 team, facilitera ceremonier och driva continuous improvement. Erfarenhet av SAFe i finanssektorn starkt meriterande.",
				RequiredSkills: util.EncodeList([]string{"scrum", "agile", "projektledning", "jira", "kanban", "SAFe"}),
				NumberOfConsultants: 1, StartDate: at(ago(days(10))), EndDate: at(ago(days(10)).Add(days(120))),
				BudgetMaxHourly: rate(900), Location: "Stockholm", Priority: model.PriorityMedium,
				Status:    model.RequestStatusInProgress,
				AISummary: "Agil coachning för bankverksamhet. Kräver ledarerfarenhet och finansförståelse.",
				AICategory: "Agile / Project Management", AIComplexityScore: 0.55, CreatedAt: ago(days(18)),
			},
			{
				ID: "req-008", CustomerID: "cust-002",
				Title:       "iOS-utvecklare - Spotify Car Thing 2.0",
				Description: "Spotify utvecklar nästa generation av Car Thing. Vi söker en iOS-utvecklare med erfarenhet av Swift, SwiftUI och Bluetooth LE-integration. Du ska arbeta med att bygga companion-appen som kommunicerar med vår in-car hardware.",
				RequiredSkills: util.EncodeList([]string{"swift", "ios", "react native", "kotlin"}),
				NumberOfConsultants: 1, StartDate: in(days(25)), EndDate: in(days(150)),
				BudgetMaxHourly: rate(1000), Location: "Stockholm", RemoteOk: true, Priority: model.PriorityMedium,
				Status:    model.RequestStatusSubmitted,
				AISummary: "Mobil/IoT-utveckling. Kräver stark iOS-kompetens med hårdvaruintegration.",
				AICategory: "Mobile Development", AIComplexityScore: 0.72, CreatedAt: ago(2 * time.Hour),
			},
			{
				ID: "req-009", CustomerID: "cust-004",
				Title:       "Full Stack Developer - Internal Tools",
				Description: "Ericsson behöver en Full Stack-utvecklare för byggande av interna produktivitetsverktyg. React-frontend med Node.js/Python-backend. Verktygen ska stödja 5000+ ingenjörer och integreras med Jira, Confluence och GitLab.",
				RequiredSkills: util.EncodeList([]string{"react", "typescript", "node.js", "python", "aws", "sql"}),
				NumberOfConsultants: 1, StartDate: at(ago(days(90))), EndDate: at(ago(days(5))),
				BudgetMaxHourly: rate(900), Location: "Stockholm", RemoteOk: true, Priority: model.PriorityLow,
				Status:    model.RequestStatusCompleted,
				AISummary: "Full stack-utveckling av interna verktyg. Standardkomplexitet.",
				AICategory: "Full Stack Development", AIComplexityScore: 0.50, CreatedAt: ago(days(100)),
			},
			{
				ID: "req-010", CustomerID: "cust-005",
				Title:       "UX Designer - Design System & Mobile App",
				Description: "H&M bygger ett nytt koncerngemensamt design system (H&M, COS, & Other Stories, Weekday). Vi söker en senior UX/UI-designer med erfarenhet av att bygga och underhålla design systems i Figma.",
				RequiredSkills: util.EncodeList([]string{"ux", "ui", "figma", "user research", "design system", "prototyping"}),
				NumberOfConsultants: 1, StartDate: in(days(8)), EndDate: in(days(160)),
				BudgetMaxHourly: rate(900), Location: "Stockholm", RemoteOk: true, Priority: model.PriorityMedium,
				Status:    model.RequestStatusAssessed,
				AISummary: "UX/UI-design för design system och mobilapp. Kräver bred designkompetens.",
				AICategory: "UX / Design", AIComplexityScore: 0.60, CreatedAt: ago(days(4)),
			},
			{
				ID: "req-011", CustomerID: "cust-001",
				Title:       "Incident Response - Produktionsstörning Volvo Connect",
				Description: "URGENT: Volvo Connect-plattformen upplever intermittenta prestandaproblem som påverkar 50 000+ lastbilskunder. Vi behöver en senior backend-/DevOps-person omedelbart för att felsöka, identifiera grundorsak och stabilisera miljön.",
				RequiredSkills: util.EncodeList([]string{"python", "docker", "kubernetes", "aws", "sql", "microservices"}),
				NumberOfConsultants: 1, StartDate: at(now), EndDate: in(days(30)),
				BudgetMaxHourly: rate(1300), Location: "Göteborg", Priority: model.PriorityUrgent,
				Status:    model.RequestStatusSubmitted,
				AISummary: "Akut incident response. Kräver omedelbar tillgång och senior kompetens i cloud/backend.",
				AICategory: "Incident Response / DevOps", AIComplexityScore: 0.95, CreatedAt: ago(45 * time.Minute),
			},
			{
				ID: "req-012", CustomerID: "cust-003",
				Title:       "Java-utvecklare - Legacy Migration",
				Description: "SEB planerade att migrera legacy Java 8-system. Projektet har pausats p.g.a. omprioriteringar internt.",
				RequiredSkills: util.EncodeList([]string{"java", "spring", "sql", "microservices"}),
				NumberOfConsultants: 2, StartDate: in(days(30)), EndDate: in(days(200)),
				BudgetMaxHourly: rate(900), Location: "Stockholm", Priority: model.PriorityLow,
				Status:    model.RequestStatusCancelled,
				AISummary: "Java-migrering, avbruten av kund.",
				AICategory: "Backend Development", AIComplexityScore: 0.60, CreatedAt: ago(days(25)),
			},
		}
		if err := tx.Create(&requests).Error; err != nil {
			return err
		}

		assessments := []model.FeasibilityAssessment{
			{
				ID: "feas-001", RequestID: "req-001", OverallRating: model.RatingHigh, ConfidenceScore: 0.92,
				AvailabilityScore: 90, SkillsMatchScore: 95, BudgetFitScore: 85, TimelineScore: 88, ComplianceScore: 92,
				MatchingConsultants: util.EncodeList([]string{"cons-001", "cons-003"}),
				Risks:               util.EncodeList([]string{"Konsulten är eftertraktad, risk för konkurrerande erbjudanden", "On-site krav begränsar kandidatpool"}),
				Recommendations:     util.EncodeList([]string{"Agera snabbt med erbjudande till Johan Nilsson", "Förbered backup-kandidat"}),
				CreatedAt:           ago(days(49)),
			},
			{
				ID: "feas-002", RequestID: "req-002", OverallRating: model.RatingHigh, ConfidenceScore: 0.88,
				AvailabilityScore: 85, SkillsMatchScore: 92, BudgetFitScore: 90, TimelineScore: 80, ComplianceScore: 95,
				MatchingConsultants: util.EncodeList([]string{"cons-004", "cons-001"}),
				Risks:               util.EncodeList([]string{"Spark-kompetens nischad, begränsat utbud", "Tidspress om Linnea ej tillgänglig"}),
				Recommendations:     util.EncodeList([]string{"Linnea Eriksson är idealkandidat", "Verifiera Spotify-specifika säkerhetskrav"}),
				CreatedAt:           ago(days(28)),
			},
			{
				ID: "feas-003", RequestID: "req-003", OverallRating: model.RatingMedium, ConfidenceScore: 0.75,
				AvailabilityScore: 45, SkillsMatchScore: 88, BudgetFitScore: 95, TimelineScore: 60, ComplianceScore: 78,
				MatchingConsultants: util.EncodeList([]string{"cons-009", "cons-003"}),
				Risks:               util.EncodeList([]string{"Daniel Öberg på tjänstledighet, tillgänglig om 30 dagar", "PCI DSS-krav kan kräva extra certifiering", "Urgent timeline svår att möta med nuvarande pool"}),
				Recommendations:     util.EncodeList([]string{"Vänta på Daniel Öberg (bäst match) eller rekrytera externt", "Överväg delad leverans med partner", "Diskutera start-datum flexibilitet med kund"}),
				CreatedAt:           ago(days(4)),
			},
			{
				ID: "feas-004", RequestID: "req-004", OverallRating: model.RatingHigh, ConfidenceScore: 0.91,
				AvailabilityScore: 88, SkillsMatchScore: 96, BudgetFitScore: 92, TimelineScore: 85, ComplianceScore: 90,
				MatchingConsultants: util.EncodeList([]string{"cons-003", "cons-001"}),
				Risks:               util.EncodeList([]string{"Oscar redan tilldelad Ericsson, intern omfördelning möjlig", "Linköping kräver ev. resekostnader"}),
				Recommendations:     util.EncodeList([]string{"Oscar Pettersson perfekt match", "Johan Nilsson som backup"}),
				CreatedAt:           ago(days(11)),
			},
			{
				ID: "feas-006", RequestID: "req-006", OverallRating: model.RatingHigh, ConfidenceScore: 0.87,
				AvailabilityScore: 92, SkillsMatchScore: 90, BudgetFitScore: 88, TimelineScore: 90, ComplianceScore: 85,
				MatchingConsultants: util.EncodeList([]string{"cons-006", "cons-004"}),
				Risks:               util.EncodeList([]string{"Hanna Ström mycket eftertraktad", "Eventuell MLOps-certifiering behövs"}),
				Recommendations:     util.EncodeList([]string{"Hanna Ström idealkandidat, presentera omedelbart", "Förbered fallback med extern partner"}),
				CreatedAt:           ago(days(2)),
			},
			{
				ID: "feas-007", RequestID: "req-007", OverallRating: model.RatingHigh, ConfidenceScore: 0.93,
				AvailabilityScore: 78, SkillsMatchScore: 95, BudgetFitScore: 95, TimelineScore: 70, ComplianceScore: 98,
				MatchingConsultants: util.EncodeList([]string{"cons-007"}),
				Risks:               util.EncodeList([]string{"Viktor avslutar nuvarande uppdrag om 14 dagar"}),
				Recommendations:     util.EncodeList([]string{"Viktor Lund perfekt passning, tillsätt direkt vid frigörelse"}),
				CreatedAt:           ago(days(17)),
			},
			{
				ID: "feas-009", RequestID: "req-009", OverallRating: model.RatingHigh, ConfidenceScore: 0.90,
				AvailabilityScore: 85, SkillsMatchScore: 88, BudgetFitScore: 95, TimelineScore: 92, ComplianceScore: 90,
				MatchingConsultants: util.EncodeList([]string{"cons-002", "cons-005"}),
				Risks:               util.EncodeList([]string{"Standarduppdrag, låg risk"}),
				Recommendations:     util.EncodeList([]string{"Emma Andersson rekommenderas"}),
				CreatedAt:           ago(days(98)),
			},
			{
				ID: "feas-010", RequestID: "req-010", OverallRating: model.RatingHigh, ConfidenceScore: 0.89,
				AvailabilityScore: 95, SkillsMatchScore: 98, BudgetFitScore: 90, TimelineScore: 85, ComplianceScore: 92,
				MatchingConsultants: util.EncodeList([]string{"cons-010", "cons-005"}),
				Risks:               util.EncodeList([]string{"Design system-arbete kräver långsiktigt engagemang"}),
				Recommendations:     util.EncodeList([]string{"Maja Holmgren perfekt match, 98% kompetensmatch"}),
				CreatedAt:           ago(days(3)),
			},
		}
		if err := tx.Create(&assessments).Error; err != nil {
			return err
		}

		assignments := []model.Assignment{
			{ID: "asgn-001", RequestID: "req-001", ConsultantID: "cons-001", StartDate: ago(days(45)), EndDate: at(ago(days(45)).Add(days(180))), HourlyRate: 950, Status: model.AssignmentConfirmed, CreatedAt: ago(days(48))},
			{ID: "asgn-002", RequestID: "req-002", ConsultantID: "cons-004", StartDate: ago(days(20)), EndDate: at(ago(days(20)).Add(days(120))), HourlyRate: 950, Status: model.AssignmentConfirmed, CreatedAt: ago(days(25))},
			{ID: "asgn-003", RequestID: "req-004", ConsultantID: "cons-003", StartDate: now.Add(days(5)), EndDate: in(days(150)), HourlyRate: 1000, Status: model.AssignmentSent, CreatedAt: ago(days(3))},
			{ID: "asgn-004", RequestID: "req-007", ConsultantID: "cons-007", StartDate: ago(days(10)), EndDate: at(ago(days(10)).Add(days(120))), HourlyRate: 850, Status: model.AssignmentConfirmed, CreatedAt: ago(days(15))},
			{ID: "asgn-005", RequestID: "req-009", ConsultantID: "cons-002", StartDate: ago(days(90)), EndDate: at(ago(days(5))), HourlyRate: 900, Status: model.AssignmentConfirmed, CreatedAt: ago(days(95))},
			{ID: "asgn-006", RequestID: "req-003", ConsultantID: "cons-009", StartDate: now.Add(days(30)), EndDate: in(days(200)), HourlyRate: 1200, Status: model.AssignmentSent, CreatedAt: ago(days(2))},
			{ID: "asgn-007", RequestID: "req-003", ConsultantID: "cons-001", StartDate: now.Add(days(10)), EndDate: in(days(200)), HourlyRate: 950, Status: model.AssignmentRejected, CreatedAt: ago(days(3))},
		}
		if err := tx.Create(&assignments).Error; err != nil {
			return err
		}

		actions := []model.CoordinationAction{
			{RequestID: "req-001", ActionType: "check_availability", Description: "Kontrollera konsulttillgänglighet", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 1, CreatedAt: ago(days(49))},
			{RequestID: "req-001", ActionType: "skill_matching", Description: "AI-matchning av kompetenser", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 2, CreatedAt: ago(days(49))},
			{RequestID: "req-001", ActionType: "compliance_check", Description: "Compliance-kontroll (arbetstid, non-compete)", Status: model.ActionCompleted, AssignedTo: "Compliance Engine", Order: 3, CreatedAt: ago(days(49))},
			{RequestID: "req-001", ActionType: "send_proposal", Description: "Skicka förslag till kund", Status: model.ActionCompleted, AssignedTo: "Sara Lindqvist", Order: 4, Result: "Kund godkände Johan Nilsson", CreatedAt: ago(days(48))},
			{RequestID: "req-001", ActionType: "contract_setup", Description: "Upprätta avtal och fakturaunderlag", Status: model.ActionCompleted, AssignedTo: "Marcus Ek", Order: 5, CreatedAt: ago(days(46))},

			{RequestID: "req-003", ActionType: "check_availability", Description: "Kontrollera konsulttillgänglighet", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 1, CreatedAt: ago(days(4))},
			{RequestID: "req-003", ActionType: "skill_matching", Description: "AI-matchning av kompetenser", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 2, CreatedAt: ago(days(4))},
			{RequestID: "req-003", ActionType: "compliance_check", Description: "PCI DSS-certifiering kontroll", Status: model.ActionInProgress, AssignedTo: "Compliance Engine", Order: 3, CreatedAt: ago(days(3))},
			{RequestID: "req-003", ActionType: "send_proposal", Description: "Skicka förslag till kund", Status: model.ActionPending, AssignedTo: "Sara Lindqvist", Order: 4, CreatedAt: ago(days(2))},

			{RequestID: "req-004", ActionType: "check_availability", Description: "Kontrollera konsulttillgänglighet", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 1, CreatedAt: ago(days(11))},
			{RequestID: "req-004", ActionType: "skill_matching", Description: "AI-matchning av kompetenser", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 2, CreatedAt: ago(days(11))},
			{RequestID: "req-004", ActionType: "compliance_check", Description: "Compliance-kontroll", Status: model.ActionCompleted, AssignedTo: "Compliance Engine", Order: 3, CreatedAt: ago(days(10))},
			{RequestID: "req-004", ActionType: "send_proposal", Description: "Förslag skickat, väntar kundsvar", Status: model.ActionInProgress, AssignedTo: "Sara Lindqvist", Order: 4, CreatedAt: ago(days(3))},

			{RequestID: "req-006", ActionType: "check_availability", Description: "Kontrollera konsulttillgänglighet", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 1, CreatedAt: ago(days(2))},
			{RequestID: "req-006", ActionType: "skill_matching", Description: "AI-matchning mot ML-pool", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 2, CreatedAt: ago(days(2))},
			{RequestID: "req-006", ActionType: "compliance_check", Description: "Compliance-kontroll", Status: model.ActionPending, AssignedTo: "Compliance Engine", Order: 3, CreatedAt: ago(days(1))},

			{RequestID: "req-007", ActionType: "check_availability", Description: "Kontrollera konsulttillgänglighet", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 1, CreatedAt: ago(days(17))},
			{RequestID: "req-007", ActionType: "skill_matching", Description: "AI-matchning av kompetenser", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 2, CreatedAt: ago(days(17))},
			{RequestID: "req-007", ActionType: "compliance_check", Description: "Compliance-kontroll", Status: model.ActionCompleted, AssignedTo: "Compliance Engine", Order: 3, CreatedAt: ago(days(16))},
			{RequestID: "req-007", ActionType: "send_proposal", Description: "Förslag godkänt av kund", Status: model.ActionCompleted, AssignedTo: "Sara Lindqvist", Order: 4, Result: "Maria Karlsson godkände Viktor Lund", CreatedAt: ago(days(12))},

			{RequestID: "req-009", ActionType: "check_availability", Description: "Kontrollera konsulttillgänglighet", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 1, CreatedAt: ago(days(98))},
			{RequestID: "req-009", ActionType: "skill_matching", Description: "AI-matchning av kompetenser", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 2, CreatedAt: ago(days(98))},
			{RequestID: "req-009", ActionType: "compliance_check", Description: "Compliance-kontroll", Status: model.ActionCompleted, AssignedTo: "Compliance Engine", Order: 3, CreatedAt: ago(days(97))},
			{RequestID: "req-009", ActionType: "send_proposal", Description: "Förslag godkänt", Status: model.ActionCompleted, AssignedTo: "Marcus Ek", Order: 4, Result: "Kund godkände Emma Andersson", CreatedAt: ago(days(95))},

			{RequestID: "req-010", ActionType: "check_availability", Description: "Kontrollera konsulttillgänglighet", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 1, CreatedAt: ago(days(3))},
			{RequestID: "req-010", ActionType: "skill_matching", Description: "AI-matchning mot design-pool", Status: model.ActionCompleted, AssignedTo: "AI Engine", Order: 2, CreatedAt: ago(days(3))},
			{RequestID: "req-010", ActionType: "compliance_check", Description: "Compliance-kontroll", Status: model.ActionCompleted, AssignedTo: "Compliance Engine", Order: 3, CreatedAt: ago(days(2))},
		}
		if err := tx.Create(&actions).Error; err != nil {
			return err
		}

		events := []model.TimelineEvent{
			{RequestID: "req-001", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "Volvo Group skickade in förfrågan om senior Python-utvecklare", Actor: "Anna Lindström", CreatedAt: ago(days(50))},
			{RequestID: "req-001", EventType: "ai_analysis", Title: "AI-analys genomförd", Description: "Kategori: Backend Development | Komplexitet: 85% | 2 matchande konsulter", Actor: "AI Engine", CreatedAt: ago(days(50))},
			{RequestID: "req-001", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: HÖG (92%) | Skills match: 95%", Actor: "AI Engine", CreatedAt: ago(days(49))},
			{RequestID: "req-001", EventType: "consultant_assigned", Title: "Konsult föreslagen", Description: "Johan Nilsson (Senior Backend Developer) föreslagen, 95% match", Actor: "Sara Lindqvist", CreatedAt: ago(days(48))},
			{RequestID: "req-001", EventType: "assignment_confirmed", Title: "Kund godkände konsult", Description: "Anna Lindström godkände Johan Nilsson", Actor: "Anna Lindström", CreatedAt: ago(days(47))},
			{RequestID: "req-001", EventType: "request_completed", Title: "Uppdrag slutfört", Description: "Uppdraget avslutat framgångsrikt. Kundnöjdhet: 9/10", Actor: "System", CreatedAt: ago(days(2))},

			{RequestID: "req-002", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "Spotify söker Data Engineer", Actor: "Erik Johansson", CreatedAt: ago(days(30))},
			{RequestID: "req-002", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: HÖG (88%)", Actor: "AI Engine", CreatedAt: ago(days(28))},
			{RequestID: "req-002", EventType: "consultant_assigned", Title: "Konsult föreslagen", Description: "Linnea Eriksson föreslagen, 92% match", Actor: "Sara Lindqvist", CreatedAt: ago(days(25))},
			{RequestID: "req-002", EventType: "assignment_confirmed", Title: "Kund godkände konsult", Description: "Erik Johansson godkände Linnea Eriksson", Actor: "Erik Johansson", CreatedAt: ago(days(22))},

			{RequestID: "req-003", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "SEB söker Cloud Architect, URGENT", Actor: "Maria Karlsson", CreatedAt: ago(days(5))},
			{RequestID: "req-003", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: MEDIUM, tillgänglighet begränsad (45%). Daniel Öberg bäst match men på tjänstledighet.", Actor: "AI Engine", CreatedAt: ago(days(4))},
			{RequestID: "req-003", EventType: "assignment_rejected", Title: "Konsult nekad av kund", Description: "Johan Nilsson föreslagen men avböjd av SEB, saknar finansbransch-erfarenhet", Actor: "Maria Karlsson", CreatedAt: ago(days(3))},
			{RequestID: "req-003", EventType: "consultant_assigned", Title: "Ny konsult föreslagen", Description: "Daniel Öberg föreslagen, tillgänglig om 30 dagar. Väntar kundsvar.", Actor: "Sara Lindqvist", CreatedAt: ago(days(2))},

			{RequestID: "req-004", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "Ericsson söker DevOps Engineer för 5G Core", Actor: "Lars Svensson", CreatedAt: ago(days(12))},
			{RequestID: "req-004", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: HÖG (91%) | Oscar Pettersson rekommenderas", Actor: "AI Engine", CreatedAt: ago(days(11))},
			{RequestID: "req-004", EventType: "assignment_sent", Title: "Konsult föreslagen", Description: "Oscar Pettersson föreslagen, 96% match. Väntar kundens godkännande.", Actor: "Sara Lindqvist", CreatedAt: ago(days(3))},

			{RequestID: "req-005", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "H&M söker 2 React-utvecklare för e-commerce replatforming", Actor: "Sofia Bergman", CreatedAt: ago(6 * time.Hour)},

			{RequestID: "req-006", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "Volvo söker ML Engineer för prediktivt underhåll", Actor: "Anna Lindström", CreatedAt: ago(days(3))},
			{RequestID: "req-006", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: HÖG, Hanna Ström idealkandidat med 90% match", Actor: "AI Engine", CreatedAt: ago(days(2))},

			{RequestID: "req-007", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "SEB söker Scrum Master", Actor: "Maria Karlsson", CreatedAt: ago(days(18))},
			{RequestID: "req-007", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: HÖG, Viktor Lund perfekt match", Actor: "AI Engine", CreatedAt: ago(days(17))},
			{RequestID: "req-007", EventType: "assignment_confirmed", Title: "Kund godkände konsult", Description: "Maria Karlsson godkände Viktor Lund", Actor: "Maria Karlsson", CreatedAt: ago(days(12))},

			{RequestID: "req-008", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "Spotify söker iOS-utvecklare för Car Thing 2.0", Actor: "Erik Johansson", CreatedAt: ago(2 * time.Hour)},

			{RequestID: "req-009", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "Ericsson söker Full Stack Developer", Actor: "Lars Svensson", CreatedAt: ago(days(100))},
			{RequestID: "req-009", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: HÖG (90%)", Actor: "AI Engine", CreatedAt: ago(days(98))},
			{RequestID: "req-009", EventType: "assignment_confirmed", Title: "Kund godkände konsult", Description: "Lars Svensson godkände Emma Andersson", Actor: "Lars Svensson", CreatedAt: ago(days(92))},
			{RequestID: "req-009", EventType: "request_completed", Title: "Uppdrag slutfört", Description: "Framgångsrikt levererat, 3 interna verktyg i produktion", Actor: "System", CreatedAt: ago(days(5))},

			{RequestID: "req-010", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "H&M söker UX Designer", Actor: "Sofia Bergman", CreatedAt: ago(days(4))},
			{RequestID: "req-010", EventType: "assessment_completed", Title: "Genomförbarhetsanalys klar", Description: "Overall: HÖG, Maja Holmgren 98% match", Actor: "AI Engine", CreatedAt: ago(days(3))},

			{RequestID: "req-011", EventType: "request_submitted", Title: "Akut förfrågan", Description: "Volvo Connect, produktionsstörning. 50 000+ kunder påverkade.", Actor: "Anna Lindström", CreatedAt: ago(45 * time.Minute)},

			{RequestID: "req-012", EventType: "request_submitted", Title: "Förfrågan inskickad", Description: "SEB söker Java-utvecklare", Actor: "Maria Karlsson", CreatedAt: ago(days(25))},
			{RequestID: "req-012", EventType: "status_changed", Title: "Förfrågan avbruten", Description: "Projektet pausat p.g.a. interna omprioriteringar hos SEB", Actor: "Maria Karlsson", CreatedAt: ago(days(15))},
		}
		if err := tx.Create(&events).Error; err != nil {
			return err
		}

		notifications := []model.Notification{
			{UserID: "user-handler-1", Title: "Akut förfrågan", Message: "Volvo Group: Incident Response, produktionsstörning Volvo Connect. 50 000+ kunder påverkade.", NotificationType: model.NotificationUrgent, Link: "req-011", CreatedAt: ago(45 * time.Minute)},
			{UserID: "user-handler-1", Title: "Ny förfrågan", Message: "Spotify: iOS-utvecklare, Car Thing 2.0", NotificationType: model.NotificationInfo, Link: "req-008", CreatedAt: ago(2 * time.Hour)},
			{UserID: "user-handler-1", Title: "Ny förfrågan", Message: "H&M Group: 2 React-utvecklare, E-commerce Replatform", NotificationType: model.NotificationInfo, Link: "req-005", CreatedAt: ago(6 * time.Hour)},
			{UserID: "user-handler-1", Title: "Konsult nekad", Message: "SEB avböjde Johan Nilsson för Cloud Architect (saknar finanserfarenhet). Ny kandidat behövs.", NotificationType: model.NotificationWarning, IsRead: true, Link: "req-003", CreatedAt: ago(days(3))},
			{UserID: "user-handler-1", Title: "Väntar på kundsvar", Message: "Ericsson: Oscar Pettersson föreslagen för DevOps 5G Core. Väntar godkännande.", NotificationType: model.NotificationInfo, IsRead: true, Link: "req-004", CreatedAt: ago(days(3))},
			{UserID: "user-handler-1", Title: "AI-analys klar", Message: "Volvo ML Engineer: Genomförbarhetsanalys klar, HÖG (87%). Hanna Ström rekommenderas.", NotificationType: model.NotificationSuccess, IsRead: true, Link: "req-006", CreatedAt: ago(days(2))},
			{UserID: "user-handler-1", Title: "Uppdrag avslutat", Message: "Johan Nilsson, Volvo Autonomous Driving slutfört framgångsrikt.", NotificationType: model.NotificationSuccess, IsRead: true, Link: "req-001", CreatedAt: ago(days(2))},

			{UserID: "user-admin", Title: "Akut förfrågan", Message: "Volvo Group: Produktionsstörning, kräver omedelbar handling.", NotificationType: model.NotificationUrgent, Link: "req-011", CreatedAt: ago(45 * time.Minute)},
			{UserID: "user-admin", Title: "Ny förfrågan", Message: "Spotify söker iOS-utvecklare", NotificationType: model.NotificationInfo, Link: "req-008", CreatedAt: ago(2 * time.Hour)},
			{UserID: "user-admin", Title: "Ny förfrågan", Message: "H&M söker 2 React-utvecklare", NotificationType: model.NotificationInfo, Link: "req-005", CreatedAt: ago(6 * time.Hour)},

			{UserID: "user-cust-001", Title: "Förfrågan mottagen", Message: "Din förfrågan 'ML Engineer - Predictive Maintenance' har tagits emot och AI-analyseras.", NotificationType: model.NotificationSuccess, Link: "req-006", CreatedAt: ago(days(3))},
			{UserID: "user-cust-001", Title: "Förfrågan mottagen", Message: "Din akuta förfrågan om incident response har tagits emot. Vi prioriterar detta.", NotificationType: model.NotificationUrgent, Link: "req-011", CreatedAt: ago(44 * time.Minute)},
			{UserID: "user-cust-001", Title: "Uppdrag avslutat", Message: "Johan Nilssons uppdrag (Autonomous Driving) har avslutats framgångsrikt.", NotificationType: model.NotificationSuccess, IsRead: true, Link: "req-001", CreatedAt: ago(days(2))},

			{UserID: "user-cust-002", Title: "Konsult tilldelad", Message: "Linnea Eriksson har tilldelats 'Data Engineer - Recommendations Pipeline'.", NotificationType: model.NotificationSuccess, IsRead: true, Link: "req-002", CreatedAt: ago(days(25))},

			{UserID: "user-cust-003", Title: "Konsult föreslagen", Message: "Daniel Öberg har föreslagits för 'Cloud Architect'. Väntar på ert godkännande.", NotificationType: model.NotificationInfo, Link: "req-003", CreatedAt: ago(days(2))},
			{UserID: "user-cust-003", Title: "Konsult nekad", Message: "Ni avböjde Johan Nilsson. Vi söker alternativa kandidater.", NotificationType: model.NotificationWarning, IsRead: true, Link: "req-003", CreatedAt: ago(days(3))},
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return err
		}

		log.Printf("seeded %d customers, %d consultants, %d requests, %d assignments, %d assessments, %d notifications",
			len(customers), len(consultants), len(requests), len(assignments), len(assessments), len(notifications))
		return nil
	})
}
