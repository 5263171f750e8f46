package techstack

// techInfo pairs a canonical display name with its CV category.
type techInfo struct {
	name     string
	category string
}

// npmTechnologies maps raw npm package names to canonical technologies.
// Keys are the exact names as declared in package.json.
var npmTechnologies = map[string]techInfo{
	// Frontend frameworks
	"react":         {"React", "Frontend Frameworks"},
	"react-dom":     {"React", "Frontend Frameworks"},
	"vue":           {"Vue.js", "Frontend Frameworks"},
	"svelte":        {"Svelte", "Frontend Frameworks"},
	"solid-js":      {"SolidJS", "Frontend Frameworks"},
	"preact":        {"Preact", "Frontend Frameworks"},
	"@angular/core": {"Angular", "Frontend Frameworks"},

	// Meta frameworks
	"next":             {"Next.js", "Meta Frameworks"},
	"nuxt":             {"Nuxt", "Meta Frameworks"},
	"gatsby":           {"Gatsby", "Meta Frameworks"},
	"astro":            {"Astro", "Meta Frameworks"},
	"remix":            {"Remix", "Meta Frameworks"},
	"@remix-run/react": {"Remix", "Meta Frameworks"},
	"@sveltejs/kit":    {"SvelteKit", "Meta Frameworks"},

	// Backend frameworks
	"express":      {"Express.js", "Backend Frameworks"},
	"fastify":      {"Fastify", "Backend Frameworks"},
	"koa":          {"Koa", "Backend Frameworks"},
	"@nestjs/core": {"NestJS", "Backend Frameworks"},
	"hono":         {"Hono", "Backend Frameworks"},
	"@hapi/hapi":   {"hapi", "Backend Frameworks"},

	// State management
	"redux":                 {"Redux", "State Management"},
	"@reduxjs/toolkit":      {"Redux Toolkit", "State Management"},
	"zustand":               {"Zustand", "State Management"},
	"mobx":                  {"MobX", "State Management"},
	"jotai":                 {"Jotai", "State Management"},
	"recoil":                {"Recoil", "State Management"},
	"@tanstack/react-query": {"TanStack Query", "State Management"},

	// Styling
	"tailwindcss":       {"Tailwind CSS", "Styling"},
	"styled-components": {"styled-components", "Styling"},
	"@emotion/react":    {"Emotion", "Styling"},
	"sass":              {"Sass", "Styling"},
	"bootstrap":         {"Bootstrap", "Styling"},
	"@mui/material":     {"Material UI", "Styling"},
	"@chakra-ui/react":  {"Chakra UI", "Styling"},

	// Testing
	"jest":                   {"Jest", "Testing"},
	"vitest":                 {"Vitest", "Testing"},
	"mocha":                  {"Mocha", "Testing"},
	"cypress":                {"Cypress", "Testing"},
	"playwright":             {"Playwright", "Testing"},
	"@playwright/test":       {"Playwright", "Testing"},
	"@testing-library/react": {"Testing Library", "Testing"},

	// Databases & ORMs
	"prisma":         {"Prisma", "Databases & ORMs"},
	"@prisma/client": {"Prisma", "Databases & ORMs"},
	"mongoose":       {"Mongoose", "Databases & ORMs"},
	"typeorm":        {"TypeORM", "Databases & ORMs"},
	"sequelize":      {"Sequelize", "Databases & ORMs"},
	"drizzle-orm":    {"Drizzle ORM", "Databases & ORMs"},
	"knex":           {"Knex.js", "Databases & ORMs"},
	"pg":             {"PostgreSQL", "Databases & ORMs"},
	"mysql2":         {"MySQL", "Databases & ORMs"},
	"redis":          {"Redis", "Databases & ORMs"},
	"ioredis":        {"Redis", "Databases & ORMs"},
	"mongodb":        {"MongoDB", "Databases & ORMs"},
	"better-sqlite3": {"SQLite", "Databases & ORMs"},

	// GraphQL
	"graphql":        {"GraphQL", "GraphQL"},
	"@apollo/client": {"Apollo Client", "GraphQL"},
	"apollo-server":  {"Apollo Server", "GraphQL"},
	"@apollo/server": {"Apollo Server", "GraphQL"},
	"urql":           {"urql", "GraphQL"},

	// Authentication
	"next-auth":          {"NextAuth.js", "Authentication"},
	"passport":           {"Passport.js", "Authentication"},
	"jsonwebtoken":       {"JWT", "Authentication"},
	"@auth0/auth0-react": {"Auth0", "Authentication"},
	"@clerk/nextjs":      {"Clerk", "Authentication"},

	// Utilities
	"axios":     {"Axios", "Utilities"},
	"lodash":    {"Lodash", "Utilities"},
	"zod":       {"Zod", "Utilities"},
	"date-fns":  {"date-fns", "Utilities"},
	"dayjs":     {"Day.js", "Utilities"},
	"rxjs":      {"RxJS", "Utilities"},
	"socket.io": {"Socket.IO", "Utilities"},

	// Build tools
	"vite":     {"Vite", "Build Tools"},
	"webpack":  {"webpack", "Build Tools"},
	"esbuild":  {"esbuild", "Build Tools"},
	"rollup":   {"Rollup", "Build Tools"},
	"turbo":    {"Turborepo", "Build Tools"},
	"parcel":   {"Parcel", "Build Tools"},
	"eslint":   {"ESLint", "Build Tools"},
	"prettier": {"Prettier", "Build Tools"},

	// Mobile
	"react-native": {"React Native", "Mobile"},
	"expo":         {"Expo", "Mobile"},
	"@ionic/react": {"Ionic", "Mobile"},
	"electron":     {"Electron", "Mobile"},

	// AI & ML
	"openai":            {"OpenAI API", "AI & ML"},
	"@anthropic-ai/sdk": {"Anthropic API", "AI & ML"},
	"langchain":         {"LangChain", "AI & ML"},
	"@langchain/core":   {"LangChain", "AI & ML"},
	"@tensorflow/tfjs":  {"TensorFlow.js", "AI & ML"},
	"ai":                {"Vercel AI SDK", "AI & ML"},

	// Languages
	"typescript": {"TypeScript", "Languages"},
}

// pythonTechnologies maps raw Python package names to canonical technologies.
// Keys are lower-case; requirement names are lower-cased before lookup.
var pythonTechnologies = map[string]techInfo{
	// Data science
	"numpy":      {"NumPy", "Data Science"},
	"pandas":     {"pandas", "Data Science"},
	"matplotlib": {"Matplotlib", "Data Science"},
	"seaborn":    {"Seaborn", "Data Science"},
	"plotly":     {"Plotly", "Data Science"},
	"jupyter":    {"Jupyter", "Data Science"},
	"scipy":      {"SciPy", "Data Science"},
	"polars":     {"Polars", "Data Science"},

	// Machine learning
	"scikit-learn": {"scikit-learn", "Machine Learning"},
	"sklearn":      {"scikit-learn", "Machine Learning"},
	"tensorflow":   {"TensorFlow", "Machine Learning"},
	"torch":        {"PyTorch", "Machine Learning"},
	"keras":        {"Keras", "Machine Learning"},
	"transformers": {"Hugging Face Transformers", "Machine Learning"},
	"xgboost":      {"XGBoost", "Machine Learning"},
	"lightgbm":     {"LightGBM", "Machine Learning"},
	"openai":       {"OpenAI API", "Machine Learning"},
	"anthropic":    {"Anthropic API", "Machine Learning"},
	"langchain":    {"LangChain", "Machine Learning"},

	// Web frameworks
	"django":    {"Django", "Web Frameworks"},
	"flask":     {"Flask", "Web Frameworks"},
	"fastapi":   {"FastAPI", "Web Frameworks"},
	"starlette": {"Starlette", "Web Frameworks"},
	"tornado":   {"Tornado", "Web Frameworks"},
	"aiohttp":   {"aiohttp", "Web Frameworks"},
	"uvicorn":   {"Uvicorn", "Web Frameworks"},
	"gunicorn":  {"Gunicorn", "Web Frameworks"},

	// ORMs & databases
	"sqlalchemy":      {"SQLAlchemy", "Databases & ORMs"},
	"alembic":         {"Alembic", "Databases & ORMs"},
	"psycopg2":        {"PostgreSQL", "Databases & ORMs"},
	"psycopg2-binary": {"PostgreSQL", "Databases & ORMs"},
	"pymongo":         {"MongoDB", "Databases & ORMs"},
	"redis":           {"Redis", "Databases & ORMs"},
	"peewee":          {"Peewee", "Databases & ORMs"},

	// Task queues
	"celery":   {"Celery", "Task Queues"},
	"rq":       {"RQ", "Task Queues"},
	"dramatiq": {"Dramatiq", "Task Queues"},

	// Testing
	"pytest":     {"pytest", "Testing"},
	"tox":        {"tox", "Testing"},
	"hypothesis": {"Hypothesis", "Testing"},

	// Scraping
	"scrapy":         {"Scrapy", "Web Scraping"},
	"beautifulsoup4": {"Beautiful Soup", "Web Scraping"},
	"selenium":       {"Selenium", "Web Scraping"},
	"requests":       {"Requests", "Web Scraping"},
	"httpx":          {"HTTPX", "Web Scraping"},

	// Validation & config
	"pydantic":    {"Pydantic", "Validation"},
	"marshmallow": {"Marshmallow", "Validation"},

	// CLI & tooling
	"click": {"Click", "CLI Tools"},
	"typer": {"Typer", "CLI Tools"},
	"rich":  {"Rich", "CLI Tools"},
}
