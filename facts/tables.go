package facts

// TechFacts backs the tech category and the final fallback of the All chain.
var TechFacts = []string{
	"The first computer bug was an actual bug! Grace Hopper found a moth stuck in a Harvard Mark II computer in 1947.",
	"The term 'debugging' comes from this incident - they literally had to 'debug' the computer by removing the moth.",
	"The first programming language was FORTRAN, created by IBM in 1957. It's still used today in scientific computing!",
	"Linus Torvalds created Linux as a hobby project while he was a student at the University of Helsinki in 1991.",
	"The first computer virus was created in 1983 by Fred Cohen and was called 'Elk Cloner'.",
	"The word 'algorithm' comes from the name of a 9th-century Persian mathematician, Al-Khwarizmi.",
	"The first website ever created is still online: http://info.cern.ch/hypertext/WWW/TheProject.html",
	"JavaScript was created in just 10 days by Brendan Eich in 1995. He was originally hired to work on Scheme!",
	"The first computer programmer was Ada Lovelace, who wrote algorithms for Charles Babbage's Analytical Engine in the 1840s.",
	"Git was created by Linus Torvalds in 2005 because he was frustrated with existing version control systems.",
}

// ProgrammingFacts backs the coding and programming categories.
var ProgrammingFacts = []string{
	"The 'Hello, World!' program was first used in a 1972 book by Brian Kernighan and Dennis Ritchie.",
	"The first computer mouse was made of wood and had only one button. It was invented by Douglas Engelbart in 1964.",
	"The term 'software' was first used by John Tukey in 1958, though the concept existed before that.",
	"The first computer game was 'Spacewar!' created in 1962 by Steve Russell at MIT.",
	"The first email was sent by Ray Tomlinson in 1971. He can't remember what it said!",
	"The first computer was the size of a room and had less processing power than a modern calculator.",
	"The first computer programmer was a woman: Ada Lovelace, who worked on Charles Babbage's Analytical Engine.",
	"The first computer virus was created in 1983 and was called 'Elk Cloner'.",
	"The first computer bug was an actual bug - a moth found in a Harvard Mark II computer in 1947.",
	"The first computer mouse was made of wood and had only one button.",
}

// AIFacts backs the ai category.
var AIFacts = []string{
	"The term 'Artificial Intelligence' was coined by John McCarthy in 1956 at the Dartmouth Conference.",
	"The first AI program was written in 1951 by Christopher Strachey - it played checkers!",
	"Machine learning algorithms can now detect cancer in medical images with higher accuracy than human radiologists.",
	"The first chatbot, ELIZA, was created in 1966 by Joseph Weizenbaum at MIT. It simulated a psychotherapist.",
	"Deep Blue, IBM's chess computer, defeated world champion Garry Kasparov in 1997 - a historic moment for AI.",
	"The concept of neural networks dates back to 1943, when Warren McCulloch and Walter Pitts created the first mathematical model.",
	"GPT-3 has 175 billion parameters, but the human brain has approximately 86 billion neurons with 100 trillion connections.",
	"The first self-driving car was developed by Carnegie Mellon University in 1984 - it could reach speeds of 20 mph.",
	"AI can now generate code, but it still struggles with complex reasoning and understanding context like humans do.",
	"The Turing Test, proposed by Alan Turing in 1950, is still considered a benchmark for AI intelligence.",
}

// ScalingFacts backs the scaling category.
var ScalingFacts = []string{
	"Google processes over 8.5 billion searches per day - that's about 99,000 searches per second!",
	"Facebook (Meta) serves over 2.9 billion monthly active users with their distributed systems architecture.",
	"Amazon's AWS handles more than 1 million requests per second during peak times.",
	"The CAP theorem states that a distributed system can only guarantee two of three properties: Consistency, Availability, and Partition tolerance.",
	"Microservices architecture allows companies like Netflix to deploy code hundreds of times per day.",
	"Load balancing can distribute traffic across multiple servers, but it requires careful session management.",
	"Database sharding splits large databases into smaller, more manageable pieces across multiple servers.",
	"CDNs (Content Delivery Networks) can reduce page load times by 50-70% by serving content from locations closer to users.",
	"Horizontal scaling (adding more servers) is often more cost-effective than vertical scaling (upgrading hardware).",
	"Caching can improve application performance by 10-100x by storing frequently accessed data in memory.",
}
